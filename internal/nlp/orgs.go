package nlp

import "strings"

// Prose's bundled model does not emit ORG spans, so organizations are
// recognized here with a closed vocabulary: well-known employer names plus
// capitalized runs ending in a corporate suffix. Same trade-off as the skill
// keyword list — names outside the vocabulary are never found.

// knownCompanies holds employer names matched as single tokens, exact case.
var knownCompanies = map[string]struct{}{
	"Google": {}, "Microsoft": {}, "Amazon": {}, "Apple": {}, "Meta": {},
	"Facebook": {}, "Netflix": {}, "IBM": {}, "Oracle": {}, "Intel": {},
	"Nvidia": {}, "Adobe": {}, "Salesforce": {}, "Uber": {}, "Airbnb": {},
	"Stripe": {}, "Spotify": {}, "Twitter": {}, "LinkedIn": {}, "PayPal": {},
	"Tesla": {}, "Samsung": {}, "Siemens": {}, "Bosch": {}, "Accenture": {},
	"Deloitte": {}, "Infosys": {}, "Wipro": {}, "Cognizant": {},
	"Capgemini": {}, "TCS": {}, "HCL": {}, "Qualcomm": {}, "Cisco": {},
	"VMware": {}, "Atlassian": {}, "Shopify": {}, "Dropbox": {}, "Slack": {},
	"Flipkart": {}, "Zomato": {}, "Swiggy": {}, "Paytm": {},
}

// orgSuffixes marks the final token of a multi-token company name.
var orgSuffixes = map[string]struct{}{
	"Inc": {}, "Inc.": {}, "LLC": {}, "Ltd": {}, "Ltd.": {}, "Corp": {},
	"Corp.": {}, "Co.": {}, "GmbH": {}, "Corporation": {}, "Company": {},
	"Technologies": {}, "Technology": {}, "Solutions": {}, "Systems": {},
	"Labs": {}, "Software": {}, "Consulting": {}, "Group": {}, "Holdings": {},
}

// markOrganizations tags organization tokens in place. Tokens the model
// already assigned to PERSON or GPE spans are left alone.
func markOrganizations(tokens []Token) {
	for i := range tokens {
		if tokens[i].Entity != "" {
			continue
		}
		if _, ok := knownCompanies[tokens[i].Text]; ok {
			tokens[i].Entity = CategoryOrganization
			continue
		}
		if _, ok := orgSuffixes[tokens[i].Text]; !ok {
			continue
		}
		// Corporate suffix: claim the run of capitalized tokens leading up
		// to it ("Acme Widget Corp" -> one ORG span).
		start := i
		for start > 0 && isCapitalized(tokens[start-1]) && tokens[start-1].Entity == "" {
			start--
		}
		if start == i {
			continue // a bare suffix with no name in front is not a company
		}
		for j := start; j <= i; j++ {
			tokens[j].Entity = CategoryOrganization
		}
	}
}

func isCapitalized(t Token) bool {
	if t.Text == "" || t.IsPunct() {
		return false
	}
	first := t.Text[:1]
	return first == strings.ToUpper(first) && first != strings.ToLower(first)
}

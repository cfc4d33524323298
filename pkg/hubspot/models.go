package hubspot

import "strconv"

// Contact is the shape this service pushes into the CRM.
type Contact struct {
	Email      string
	FirstName  string
	LastName   string
	Company    string
	Role       string
	Experience string
	Interest   string
	LeadScore  int
}

func (c Contact) properties() map[string]string {
	props := map[string]string{
		"email": c.Email,
	}

	if c.FirstName != "" {
		props["firstname"] = c.FirstName
	}
	if c.LastName != "" {
		props["lastname"] = c.LastName
	}
	if c.Company != "" {
		props["company"] = c.Company
	}
	if c.Role != "" {
		props["jobtitle"] = c.Role
	}
	if c.Experience != "" {
		props["ai_experience_level"] = c.Experience
	}
	if c.Interest != "" {
		props["ai_interest_area"] = c.Interest
	}
	if c.LeadScore > 0 {
		props["hs_lead_score"] = strconv.Itoa(c.LeadScore)
	}

	return props
}

// ContactRecord is the CRM's view of a contact after an upsert.
type ContactRecord struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
	// True when the upsert created a new contact.
	Created bool `json:"-"`
}

type searchRequest struct {
	FilterGroups []filterGroup `json:"filterGroups"`
	Limit        int           `json:"limit"`
}

type filterGroup struct {
	Filters []filter `json:"filters"`
}

type filter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

type searchResponse struct {
	Total   int             `json:"total"`
	Results []ContactRecord `json:"results"`
}

type upsertRequest struct {
	Properties map[string]string `json:"properties"`
}

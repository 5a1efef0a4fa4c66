// Copyright 2021 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cascade

import "context"

// MicrosoftTenantAssociation describes the Microsoft tenant linked
// to a customer.
type MicrosoftTenantAssociation struct {
	PrimaryDomain string `json:"PrimaryDomain,omitempty"`
	TenantDomain  string `json:"TenantDomain,omitempty"`
	TenantID      string `json:"TenantId,omitempty"`
}

// McaAcceptance records acceptance of the Microsoft Customer
// Agreement for a customer.
type McaAcceptance struct {
	DateAccepted Timestamp `json:"DateAccepted"`
	FirstName    string    `json:"FirstName"`
	Surname      string    `json:"Surname"`
	PhoneNumber  string    `json:"PhoneNumber"`
	EmailAddress string    `json:"EmailAddress"`
	AddressLine1 string    `json:"AddressLine1"`
	Postcode     string    `json:"Postcode"`
	CountryID    int       `json:"CountryId"`
	AgreementURL string    `json:"AgreementUrl"`
}

// GetTenantAssociation retrieves the Microsoft tenant association
// for a customer.
func (sv *Service) GetTenantAssociation(ctx context.Context, primaryDomain string) (*MicrosoftTenantAssociation, error) {
	var assoc *MicrosoftTenantAssociation
	return assoc, sv.get(ctx, "/customers/"+primaryDomain+"/MicrosoftTenantAssociation", nil, &assoc)
}

// CreateTenant creates a Microsoft tenant for a customer.
// tenantPrefix is the required domain prefix and is suffixed with
// onmicrosoft.com, e.g. xxx for xxx.onmicrosoft.com.
func (sv *Service) CreateTenant(ctx context.Context, primaryDomain, tenantPrefix string) error {
	return sv.post(ctx, "/customers/"+primaryDomain+"/MicrosoftTenant/"+tenantPrefix+".onmicrosoft.com", nil, nil)
}

// GetMcaAcceptance retrieves the Microsoft Customer Agreement
// acceptance recorded for a customer.
func (sv *Service) GetMcaAcceptance(ctx context.Context, primaryDomain string) (*McaAcceptance, error) {
	var acceptance *McaAcceptance
	return acceptance, sv.get(ctx, "/customers/"+primaryDomain+"/McaAcceptance", nil, &acceptance)
}

// AcceptMca accepts the Microsoft Customer Agreement for a customer.
// Country id values are listed in the portal api guide; the United
// Kingdom is 26.  The agreement url sent is always AgreementURL.
func (sv *Service) AcceptMca(ctx context.Context, primaryDomain string, dateAccepted Timestamp,
	firstName, surname, phone, email, line1, postcode string, countryID int) error {
	return sv.post(ctx, "/customers/"+primaryDomain+"/McaAcceptance", &McaAcceptance{
		DateAccepted: dateAccepted,
		FirstName:    firstName,
		Surname:      surname,
		PhoneNumber:  phone,
		EmailAddress: email,
		AddressLine1: line1,
		Postcode:     postcode,
		CountryID:    countryID,
		AgreementURL: AgreementURL,
	}, nil)
}

// Copyright 2021 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cascade

import (
	"context"
	"errors"
)

// Contact types accepted by the portal.  Send a BillingContact to
// populate the portal gui.
const (
	ContactTypeIT      = "ITContact"
	ContactTypeBilling = "BillingContact"
)

// Address describes a customer address.  Line2 and State are left
// out of the payload when blank; State is required in
// AU, CA, IT, JA, NL, ES, CH and US.
type Address struct {
	Line1    string `json:"Line1"`
	Line2    string `json:"Line2,omitempty"`
	City     string `json:"City"`
	State    string `json:"State,omitempty"`
	Postcode string `json:"Postcode"`
}

// Contact describes a customer contact.  ContactType must be one of
// the ContactType constants.
type Contact struct {
	FirstName        string `json:"FirstName"`
	LastName         string `json:"LastName"`
	EmailAddress     string `json:"EmailAddress"`
	PhoneNumber      string `json:"PhoneNumber"`
	ContactType      string `json:"ContactType"`
	IsPrimaryContact bool   `json:"IsPrimaryContact"`
}

// Customer describes the customer entity.  PrimaryDomain and
// Reference must be unique within cascade.  Optional fields are left
// out of a create payload when blank; the portal treats a blank
// value and an absent key differently.  If AdministratorPassword is
// not provided the portal emails one.
type Customer struct {
	PrimaryDomain         string    `json:"PrimaryDomain"`
	Name                  string    `json:"Name"`
	Reference             string    `json:"Reference"`
	IsActive              bool      `json:"IsActive"`
	HeadOfficeAddress     Address   `json:"HeadOfficeAddress"`
	EUVATNumber           string    `json:"EUVATNumber,omitempty"`
	IsoCountryCode        string    `json:"IsoCountryCode,omitempty"`
	AdministratorPassword string    `json:"AdministratorPassword,omitempty"`
	BillingAddress        *Address  `json:"BillingAddress,omitempty"`
	Contacts              []Contact `json:"Contacts,omitempty"`
}

// MakeAddress builds an Address as required by other calls.  line2
// and state may be blank.
func MakeAddress(line1, city, postcode, line2, state string) Address {
	return Address{
		Line1:    line1,
		Line2:    line2,
		City:     city,
		State:    state,
		Postcode: postcode,
	}
}

// MakeContact builds a Contact as required by other calls.
func MakeContact(firstName, lastName, email, phone, contactType string, primary bool) Contact {
	return Contact{
		FirstName:        firstName,
		LastName:         lastName,
		EmailAddress:     email,
		PhoneNumber:      phone,
		ContactType:      contactType,
		IsPrimaryContact: primary,
	}
}

// ListCustomers returns all customers.
func (sv *Service) ListCustomers(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	return customers, sv.get(ctx, "/Customers", nil, &customers)
}

// GetCustomer retrieves a single customer's details.
func (sv *Service) GetCustomer(ctx context.Context, primaryDomain string) (*Customer, error) {
	var customer *Customer
	return customer, sv.get(ctx, "/Customers/"+primaryDomain, nil, &customer)
}

// CreateCustomer creates a new customer.
func (sv *Service) CreateCustomer(ctx context.Context, customer *Customer) error {
	if customer == nil {
		return errors.New("nil customer")
	}
	return sv.post(ctx, "/customers", customer, nil)
}

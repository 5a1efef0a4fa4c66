// Copyright 2021 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cascade

import (
	"context"
	"errors"
)

// SubscriptionLine describes one product line within a subscription
// create request.
type SubscriptionLine struct {
	ProductCode string            `json:"ProductCode"`
	Quantity    int               `json:"Quantity"`
	IsMandatory bool              `json:"IsMandatory"`
	Parameters  map[string]string `json:"Parameters,omitempty"`
}

// SubscriptionCreateRequest orders one or more product lines for a
// customer.  Reference must be unique within cascade.
type SubscriptionCreateRequest struct {
	Reference     string             `json:"Reference"`
	Subscriptions []SubscriptionLine `json:"Subscriptions"`
}

// Subscription describes a purchased product line on a customer's
// account.
type Subscription struct {
	Reference   string            `json:"Reference,omitempty"`
	ProductCode string            `json:"ProductCode"`
	Quantity    int               `json:"Quantity"`
	IsMandatory bool              `json:"IsMandatory,omitempty"`
	Parameters  map[string]string `json:"Parameters,omitempty"`
}

// CancellationRequest describes a pending cancellation for a
// subscription.
type CancellationRequest struct {
	ProductCode               string   `json:"ProductCode,omitempty"`
	CancellationDateRequested Datetime `json:"CancellationDateRequested"`
	Status                    string   `json:"Status,omitempty"`
}

type quantityUpdate struct {
	Quantity int `json:"Quantity"`
}

type productCodeUpdate struct {
	ProductCode string `json:"ProductCode"`
}

type cancellationSubmit struct {
	CancellationDateRequested Datetime `json:"CancellationDateRequested"`
}

// ListSubscriptions returns the subscriptions on a customer's account.
func (sv *Service) ListSubscriptions(ctx context.Context, primaryDomain string) ([]Subscription, error) {
	var subscriptions []Subscription
	return subscriptions, sv.get(ctx, "/customers/"+primaryDomain+"/subscriptions", nil, &subscriptions)
}

// GetSubscription retrieves a single subscription by product code.
func (sv *Service) GetSubscription(ctx context.Context, primaryDomain, productCode string) (*Subscription, error) {
	var subscription *Subscription
	return subscription, sv.get(ctx, "/customers/"+primaryDomain+"/subscriptions/"+productCode, nil, &subscription)
}

// CreateSubscription orders the product lines in req for a customer.
func (sv *Service) CreateSubscription(ctx context.Context, primaryDomain string, req *SubscriptionCreateRequest) error {
	if req == nil {
		return errors.New("nil SubscriptionCreateRequest")
	}
	return sv.post(ctx, "/customers/"+primaryDomain+"/subscriptions", req, nil)
}

// UpdateSubscriptionQuantity changes the quantity on a subscription.
//
// The portal currently rejects this request shape; it is kept as
// documented until the portal accepts it.
func (sv *Service) UpdateSubscriptionQuantity(ctx context.Context, primaryDomain, productCode string, quantity int) error {
	return sv.post(ctx, "/customers/"+primaryDomain+"/subscriptions/"+productCode, &quantityUpdate{Quantity: quantity}, nil)
}

// UpgradeSubscription moves a subscription to a new product code.
//
// This call has not been verified against the live portal.
func (sv *Service) UpgradeSubscription(ctx context.Context, primaryDomain, oldProductCode, newProductCode string) error {
	return sv.post(ctx, "/customers/"+primaryDomain+"/subscriptions/"+oldProductCode, &productCodeUpdate{ProductCode: newProductCode}, nil)
}

// GetCancellationRequest retrieves the cancellation request for a
// subscription.
func (sv *Service) GetCancellationRequest(ctx context.Context, primaryDomain, productCode string) (*CancellationRequest, error) {
	var cr *CancellationRequest
	return cr, sv.get(ctx, "/customers/"+primaryDomain+"/subscriptions/"+productCode+"/cancellation-request", nil, &cr)
}

// SubmitCancellationRequest requests cancellation of a subscription
// on the given date.
func (sv *Service) SubmitCancellationRequest(ctx context.Context, primaryDomain, productCode string, dateRequested Datetime) error {
	return sv.post(ctx, "/customers/"+primaryDomain+"/subscriptions/"+productCode+"/cancellation-request",
		&cancellationSubmit{CancellationDateRequested: dateRequested}, nil)
}

// AbortCancellationRequest aborts a pending cancellation request.
func (sv *Service) AbortCancellationRequest(ctx context.Context, primaryDomain, productCode string) error {
	return sv.delete(ctx, "/customers/"+primaryDomain+"/subscriptions/"+productCode+"/cancellation-request")
}

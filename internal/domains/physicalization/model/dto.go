package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RequestPhysicalizationRequest - POST /physicalize
type RequestPhysicalizationRequest struct {
	WorkID       string        `json:"workId"`
	ShippingInfo *ShippingInfo `json:"shippingInfo,omitempty"`
}

func (r RequestPhysicalizationRequest) Validate() error {
	if r.ShippingInfo == nil {
		return nil
	}
	return validation.ValidateStruct(r.ShippingInfo,
		validation.Field(&r.ShippingInfo.Address, validation.Required, validation.Length(5, 300)),
		validation.Field(&r.ShippingInfo.Carrier, validation.Length(0, 50)),
		validation.Field(&r.ShippingInfo.TrackingNumber, validation.Length(0, 100)),
	)
}

type RequestResponse struct {
	Message string `json:"message"`
}

package model

import (
	"time"

	workModel "stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/shared"
)

type Status string

const (
	StatusRequested  Status = "requested"
	StatusInProgress Status = "in_progress"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
)

type ShippingInfo = shared.ShippingInfo

// Physicalization tracks a request to produce the physical counterpart of a token
type Physicalization struct {
	PhysicalizationID string        `json:"physicalizationId"`
	OrderID           string        `json:"orderId"`
	WorkID            string        `json:"workId"`
	OwnerAddress      string        `json:"ownerAddress"`
	Status            Status        `json:"status"`
	RequestDate       time.Time     `json:"requestDate"`
	ShippingInfo      *ShippingInfo `json:"shippingInfo,omitempty"`
}

func (p Physicalization) DocumentID() string { return p.PhysicalizationID }

// =====================================================
// TIMELINE
// =====================================================

const StepComplete = "complete"

type TimelineStep struct {
	Name   string    `json:"name"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
}

// Timeline derives progress steps from the status; it is never stored.
// In Progress is dated +2 days, Shipped +5 days, Delivered +10 days after the request.
func (p Physicalization) Timeline() []TimelineStep {
	steps := []TimelineStep{{Name: "Requested", Date: p.RequestDate, Status: StepComplete}}

	reached := func(statuses ...Status) bool {
		for _, s := range statuses {
			if p.Status == s {
				return true
			}
		}
		return false
	}

	if reached(StatusInProgress, StatusShipped, StatusDelivered) {
		steps = append(steps, TimelineStep{Name: "In Progress", Date: p.RequestDate.AddDate(0, 0, 2), Status: StepComplete})
	}
	if reached(StatusShipped, StatusDelivered) {
		steps = append(steps, TimelineStep{Name: "Shipped", Date: p.RequestDate.AddDate(0, 0, 5), Status: StepComplete})
	}
	if reached(StatusDelivered) {
		steps = append(steps, TimelineStep{Name: "Delivered", Date: p.RequestDate.AddDate(0, 0, 10), Status: StepComplete})
	}
	return steps
}

// View is the API shape: the record plus its work and, on detail, the timeline
type View struct {
	Physicalization
	Work     *workModel.Work `json:"work,omitempty"`
	Timeline []TimelineStep  `json:"timeline,omitempty"`
}

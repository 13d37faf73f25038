package domain

import (
	"fmt"
	"strings"
	"time"
)

type DealStatus string

const (
	DealStatusDraft      DealStatus = "Draft"
	DealStatusSubmitted  DealStatus = "Submitted"
	DealStatusPending    DealStatus = "Pending"
	DealStatusInProgress DealStatus = "InProgress"
	DealStatusAssigned   DealStatus = "Assigned"
	DealStatusApproved   DealStatus = "Approved"
	DealStatusRejected   DealStatus = "Rejected"
)

// ParseDealStatus normalizes an inbound status string to the closed enum.
// Matching is case-insensitive; "IN_PROGRESS" is accepted as a legacy alias.
func ParseDealStatus(s string) (DealStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DRAFT":
		return DealStatusDraft, nil
	case "SUBMITTED":
		return DealStatusSubmitted, nil
	case "PENDING":
		return DealStatusPending, nil
	case "INPROGRESS", "IN_PROGRESS":
		return DealStatusInProgress, nil
	case "ASSIGNED":
		return DealStatusAssigned, nil
	case "APPROVED":
		return DealStatusApproved, nil
	case "REJECTED":
		return DealStatusRejected, nil
	}
	return "", fmt.Errorf("unknown deal status %q", s)
}

// IsTerminal reports whether the approval workflow is finished for this
// status. The payout sub-state continues independently.
func (s DealStatus) IsTerminal() bool {
	return s == DealStatusApproved || s == DealStatusRejected
}

// IsSalesAction reports whether a transition to this status is taken by the
// deal owner rather than an admin. Sales actions append to the notes log;
// admin actions replace the reason/comment fields.
func (s DealStatus) IsSalesAction() bool {
	return s == DealStatusSubmitted || s == DealStatusPending || s == DealStatusInProgress
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

type PayoutStatus string

const (
	PayoutStatusPending    PayoutStatus = "PENDING"
	PayoutStatusProcessing PayoutStatus = "PROCESSING"
	PayoutStatusPaid       PayoutStatus = "PAID"
)

type Deal struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Date      *time.Time `json:"date,omitempty"`
	Amount    float64    `json:"amount"`
	Rate      float64    `json:"rate"`      // percentage, e.g. 5.0 or 10.0
	Incentive float64    `json:"incentive"` // amount * rate / 100 unless caller-supplied
	Status    DealStatus `json:"status"`
	RiskLevel RiskLevel  `json:"risk_level"`

	DealName          string     `json:"deal_name,omitempty"`
	OrganizationName  string     `json:"organization_name,omitempty"`
	DealType          string     `json:"deal_type,omitempty"` // New, Renewal, Upsell, Cross-sell
	ExpectedCloseDate *time.Time `json:"expected_close_date,omitempty"`
	Priority          string     `json:"priority,omitempty"`
	DealNotes         string     `json:"deal_notes,omitempty"`
	PolicyID          *int64     `json:"policy_id,omitempty"`
	CreatedBy         *int64     `json:"created_by,omitempty"` // admin who assigned the deal

	ClientName string `json:"client_name,omitempty"`
	Industry   string `json:"industry,omitempty"`
	Region     string `json:"region,omitempty"`
	Currency   string `json:"currency,omitempty"`

	RejectionReason string     `json:"rejection_reason,omitempty"`
	AdminComment    string     `json:"admin_comment,omitempty"`
	ApprovedBy      *int64     `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	ActualCloseDate *time.Time `json:"actual_close_date,omitempty"`

	PayoutStatus PayoutStatus `json:"payout_status"`
	PayoutDate   *time.Time   `json:"payout_date,omitempty"`

	LegacyDeal bool      `json:"legacy_deal"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AppendNote adds a timestamped line to the running notes log. Existing
// notes are never overwritten.
func (d *Deal) AppendNote(at time.Time, note string) {
	if note == "" {
		return
	}
	line := at.Format("2006-01-02 15:04") + " - " + note
	if d.DealNotes == "" {
		d.DealNotes = line
		return
	}
	d.DealNotes = d.DealNotes + "\n\n" + line
}

// DisplayName returns the best available label for the deal.
func (d *Deal) DisplayName() string {
	if d.DealName != "" {
		return d.DealName
	}
	if d.OrganizationName != "" {
		return d.OrganizationName
	}
	return "Unnamed"
}

package domain

import (
	"fmt"
	"time"
)

// AutoApproveComment is stamped on deals approved by the bulk low-risk
// operation.
const AutoApproveComment = "Auto-approved based on Low Risk level"

// TransitionInput carries a requested status change. Reason and Comment are
// pointers so "absent" and "empty string" stay distinguishable: admin-side
// fields are replaced only when the caller supplied a value.
type TransitionInput struct {
	To      DealStatus
	Reason  *string
	Comment *string
	ActorID *int64
}

// Transition applies a status change to the deal and returns the side-effect
// events to dispatch. The deal is mutated only when the transition is legal.
//
// Sales-actor transitions (Submitted, Pending, InProgress) append the comment
// to the running notes log and alert admins. Admin-actor transitions replace
// the rejection reason / admin comment fields; Approved additionally stamps
// the approval metadata. Approved and Rejected are terminal for the approval
// workflow.
func (d *Deal) Transition(in TransitionInput, now time.Time) ([]Event, error) {
	if d.Status.IsTerminal() {
		return nil, &IllegalTransitionError{From: d.Status, To: in.To}
	}
	if in.To == DealStatusDraft {
		return nil, Validationf("deal cannot re-enter Draft")
	}

	oldStatus := d.Status
	d.Status = in.To
	d.UpdatedAt = now

	if in.To.IsSalesAction() {
		if in.Comment != nil && *in.Comment != "" {
			d.AppendNote(now, *in.Comment)
		}
	} else {
		if in.Reason != nil {
			d.RejectionReason = *in.Reason
		}
		if in.Comment != nil {
			d.AdminComment = *in.Comment
		}
	}

	if in.To == DealStatusApproved {
		approvedAt := now
		closeDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		d.ApprovedAt = &approvedAt
		d.ApprovedBy = in.ActorID
		d.ActualCloseDate = &closeDate
	}

	events := []Event{d.transitionAudit(oldStatus, in)}
	events = append(events, d.ownerStatusNotification(in))
	if in.To.IsSalesAction() {
		events = append(events, d.adminUpdateNotification(in))
	}
	return events, nil
}

// AutoApprove applies the bulk low-risk approval, bypassing the
// reason/comment handling of regular transitions.
func (d *Deal) AutoApprove(now time.Time) []Event {
	approvedAt := now
	closeDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	d.Status = DealStatusApproved
	d.AdminComment = AutoApproveComment
	d.ApprovedAt = &approvedAt
	d.ActualCloseDate = &closeDate
	d.UpdatedAt = now

	return []Event{
		NewAuditEvent(nil, string(RoleAdmin), "BULK_APPROVE", "DEAL", d.ID, "Bulk approved low risk deal"),
	}
}

func (d *Deal) transitionAudit(oldStatus DealStatus, in TransitionInput) Event {
	details := fmt.Sprintf("Status of deal '%s' changed from %s to %s", d.DisplayName(), oldStatus, in.To)
	if in.Reason != nil && *in.Reason != "" {
		details += ". Rejection Reason: " + *in.Reason
	}
	if in.Comment != nil && *in.Comment != "" {
		details += ". Admin Comment: " + *in.Comment
	}
	return NewAuditEvent(in.ActorID, string(RoleAdmin), "UPDATE_STATUS", "DEAL", d.ID, details)
}

func (d *Deal) ownerStatusNotification(in TransitionInput) Event {
	msg := fmt.Sprintf("Your deal of %s%.2f was %s", d.currencySymbol(), d.Amount, in.To)
	if in.To == DealStatusRejected && in.Reason != nil && *in.Reason != "" {
		msg += ". Reason: " + *in.Reason
	} else if in.Comment != nil && *in.Comment != "" {
		msg += ". Admin Comment: " + *in.Comment
	}
	return NewNotificationEvent(AudienceOwner, "Deal "+string(in.To), msg, NotificationTypeInfo)
}

func (d *Deal) adminUpdateNotification(in TransitionInput) Event {
	msg := fmt.Sprintf("Deal '%s' moved to %s", d.DisplayName(), in.To)
	if in.Comment != nil && *in.Comment != "" {
		msg += ": " + *in.Comment
	}
	return NewNotificationEvent(AudienceAdmins, "Deal Update: "+string(in.To), msg, NotificationTypeInfo)
}

func (d *Deal) currencySymbol() string {
	if d.Currency != "" {
		return d.Currency
	}
	return "₹"
}

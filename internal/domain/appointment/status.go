package appointment

import "github.com/barberdesk/barberdesk-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusRealized  Status = "realized"
	StatusNoShow    Status = "no_show"
)

// ParseStatus maps a stored value onto a known status. Unknown values
// fall back to scheduled instead of failing, so bad rows stay readable.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusScheduled, StatusConfirmed, StatusCancelled, StatusRealized, StatusNoShow:
		return Status(s)
	default:
		return StatusScheduled
	}
}

func InitialStatus() Status {
	return StatusScheduled
}

// BlocksAgenda reports whether an appointment in this status occupies
// its professional's agenda for conflict purposes.
func (s Status) BlocksAgenda() bool {
	return s != StatusCancelled && s != StatusNoShow
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusRealized || s == StatusNoShow
}

// ===============================
// Transition guards
// ===============================

// CanConfirm define se um agendamento pode ser confirmado
func CanConfirm(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusScheduled && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanFinalize define se um agendamento pode ser finalizado
func CanFinalize(current Status) error {
	if current != StatusScheduled && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanMarkNoShow define se um agendamento pode ser marcado como ausente
func CanMarkNoShow(current Status) error {
	if current != StatusScheduled && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

package domain

// Default business configuration values
const (
	DefaultBookingFee               = 100.0
	DefaultBanLiftFee               = 500.0
	DefaultWarningHardLimit         = 5
	DefaultWarningThreshold         = 3
	DefaultGroomerDailyLimit        = 3
	DefaultSameDayCutoffMinutes     = 30
	DefaultSingleServiceThresholdKg = 15.0
)

// Business validation constants
const (
	MaxNotesLength            = 500
	MaxCancellationNoteLength = 500
	MaxWarningReasonLength    = 300
	MaxCustomerNameLength     = 120
	MaxPetNameLength          = 80
	SingleServicePackageID    = "single-service"
	ShortCodePrefix           = "BB-"
	ShortCodeLength           = 6
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking sources
const (
	SourceOnline = "online"
	SourceWalkIn = "walk_in"
)

// Audit actions
const (
	AuditActionCreated         = "Created"
	AuditActionGroomerAssigned = "Groomer Assigned"
	AuditActionConfirmed       = "Confirmed"
	AuditActionServiceStarted  = "Service Started"
	AuditActionCompleted       = "Completed"
	AuditActionCancelled       = "Cancelled"
	AuditActionRescheduled     = "Rescheduled"
	AuditActionNoShow          = "No Show"
	AuditActionAddOnAdded      = "Add-on Added"
	AuditActionAddOnRemoved    = "Add-on Removed"
	AuditActionMediaAttached   = "Media Attached"
	AuditActionFeatured        = "Featured Updated"
)

// InactiveStatuses statuses that free the (date, slot, groomer) triple
var InactiveStatuses = []BookingStatus{
	StatusCancelledByCustomer,
	StatusCancelledByAdmin,
	StatusNoShow,
}

// ActiveStatuses statuses that occupy groomer capacity
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}

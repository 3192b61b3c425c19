package models

// AttendanceStatus defines the possible status values for a day's attendance.
// Students may only be present or absent; leave applies to staff.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Leave   AttendanceStatus = "leave"
)

// StudentStatuses lists the statuses a student day cell may take.
var StudentStatuses = []AttendanceStatus{Present, Absent}

// StaffStatuses lists the statuses a staff day cell may take.
var StaffStatuses = []AttendanceStatus{Present, Absent, Leave}

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// StaffRole distinguishes teaching staff from other employees on payroll.
type StaffRole string

const (
	RoleTeacher    StaffRole = "teacher"
	RoleOtherStaff StaffRole = "other_staff"
)

// PayrollMode names the two salary computation rules. The caller picks
// one explicitly on every payment; records keep the mode they were
// computed with.
type PayrollMode string

const (
	// PayrollAttendance pays per-day rate for present + leave + holiday days.
	PayrollAttendance PayrollMode = "attendance"
	// PayrollDeduction pays full salary minus a deduction for absent + leave days.
	PayrollDeduction PayrollMode = "deduction"
)

// PeriodType defines the kind of a timetable period.
type PeriodType string

const (
	PeriodClass PeriodType = "class"
	PeriodBreak PeriodType = "break"
	PeriodOff   PeriodType = "off"
)

// NoticeKind classifies notice-board entries.
type NoticeKind string

const (
	NoticeGeneral NoticeKind = "general"
	NoticeHoliday NoticeKind = "holiday"
	NoticeFeeDue  NoticeKind = "fee_due"
)

// RelationshipType defines the relationship of a parent/guardian to a student.
type RelationshipType string

const (
	Father   RelationshipType = "father"
	Mother   RelationshipType = "mother"
	Guardian RelationshipType = "guardian"
	OtherRel RelationshipType = "other"
)

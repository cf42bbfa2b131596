// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Principal Kinds

// PrincipalKind tags which credential store authenticated a session.
type PrincipalKind string

const (
	// The single configured back-office administrator
	KindAdmin PrincipalKind = "admin"

	// A customer-service officer (CSO) bound to one function
	KindOfficer PrincipalKind = "officer"

	// A self-storage customer
	KindUser PrincipalKind = "user"
)

// # Officer Role Tags

// RoleTag is the access tag carried by an officer's function.
type RoleTag string

const (
	// Complaint handling queue
	RoleAccessComplaints RoleTag = "access_complaints"

	// CSO staff management
	RoleAccessOfficers RoleTag = "access_officers"

	// Payment records and reconciliation
	RoleAccessPayments RoleTag = "access_payments"

	// Storage unit CRUD
	RoleAccessUnits RoleTag = "access_units"

	// Warehouse CRUD
	RoleAccessWarehouses RoleTag = "access_warehouses"
)

// RoleTags lists every recognised officer tag.
var RoleTags = []RoleTag{
	RoleAccessComplaints,
	RoleAccessOfficers,
	RoleAccessPayments,
	RoleAccessUnits,
	RoleAccessWarehouses,
}

// IsKnown reports whether the tag is one of the fixed officer tags.
func (r RoleTag) IsKnown() bool {
	for _, tag := range RoleTags {
		if r == tag {
			return true
		}
	}
	return false
}

// # Customer Roles

// RoleCustomer is the default role assigned to self-registered users.
const RoleCustomer = "customer"

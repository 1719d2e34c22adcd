package user

type Role string

const (
	// RoleCustomer is the default tier; bookings start at pending_payment.
	RoleCustomer Role = "customer"
	// RoleMember is the privileged tier; no upfront payment is required, so
	// bookings start at pending_confirmation.
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleMember, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) SkipsUpfrontPayment() bool {
	return r == RoleMember || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

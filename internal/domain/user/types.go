package user

// Role is ordered: every admin permission includes the customer ones.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// rank 0 means unknown
var roleRank = map[Role]int{
	RoleCustomer: 1,
	RoleAdmin:    2,
}

func NewRole(s string) (Role, error) {
	if r := Role(s); r.IsValid() {
		return r, nil
	}
	return "", ErrInvalidRole
}

func (r Role) String() string { return string(r) }
func (r Role) IsValid() bool  { return roleRank[r] > 0 }

// AtLeast is false whenever either role is unknown.
func (r Role) AtLeast(required Role) bool {
	have, need := roleRank[r], roleRank[required]
	return have > 0 && need > 0 && have >= need
}

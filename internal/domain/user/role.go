package user

import "fmt"

type Role string

const (
	RoleMember             Role = "member"
	RoleCountryCoordinator Role = "country_coordinator"
	RoleFundAdmin          Role = "fund_admin"
	RoleGeneralAdmin       Role = "general_admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleCountryCoordinator, RoleFundAdmin, RoleGeneralAdmin:
		return true
	}
	return false
}

// ApprovalLimits carries the configured per-role ceilings. Callers build it
// from the system config so this package stays independent of storage.
type ApprovalLimits struct {
	CountryCoordinator float64
	FundAdmin          float64
}

// Capability is the closed per-role dispatch: one variant per role, so role
// behavior lives here instead of in string comparisons scattered around the
// workflow code.
type Capability interface {
	Role() Role
	// Rank orders roles by authority: member < country_coordinator <
	// fund_admin < general_admin.
	Rank() int
	// ApprovalLimit returns the role's own approval ceiling. unlimited is
	// true for general_admin.
	ApprovalLimit(lim ApprovalLimits) (limit float64, unlimited bool)
	// CountryScoped reports whether the role may only act on applications
	// from its own country.
	CountryScoped() bool
	CanReview() bool
	// ReviewsEscalations reports whether the role's queue includes
	// applications awaiting higher approval.
	ReviewsEscalations() bool
	CanDisburse() bool
	CanManageConfig() bool
}

type member struct{}

func (member) Role() Role { return RoleMember }
func (member) Rank() int { return 0 }
func (member) ApprovalLimit(ApprovalLimits) (float64, bool) { return 0, false }
func (member) CountryScoped() bool { return true }
func (member) CanReview() bool { return false }
func (member) ReviewsEscalations() bool { return false }
func (member) CanDisburse() bool { return false }
func (member) CanManageConfig() bool { return false }

type countryCoordinator struct{}

func (countryCoordinator) Role() Role { return RoleCountryCoordinator }
func (countryCoordinator) Rank() int { return 1 }
func (countryCoordinator) ApprovalLimit(lim ApprovalLimits) (float64, bool) {
	return lim.CountryCoordinator, false
}
func (countryCoordinator) CountryScoped() bool { return true }
func (countryCoordinator) CanReview() bool { return true }
func (countryCoordinator) ReviewsEscalations() bool { return false }
func (countryCoordinator) CanDisburse() bool { return false }
func (countryCoordinator) CanManageConfig() bool { return false }

type fundAdmin struct{}

func (fundAdmin) Role() Role { return RoleFundAdmin }
func (fundAdmin) Rank() int { return 2 }
func (fundAdmin) ApprovalLimit(lim ApprovalLimits) (float64, bool) {
	return lim.FundAdmin, false
}
func (fundAdmin) CountryScoped() bool { return false }
func (fundAdmin) ReviewsEscalations() bool { return true }
func (fundAdmin) CanReview() bool { return true }
func (fundAdmin) CanDisburse() bool { return true }
func (fundAdmin) CanManageConfig() bool { return false }

type generalAdmin struct{}

func (generalAdmin) Role() Role { return RoleGeneralAdmin }
func (generalAdmin) Rank() int { return 3 }
func (generalAdmin) ApprovalLimit(ApprovalLimits) (float64, bool) { return 0, true }
func (generalAdmin) CountryScoped() bool { return false }
func (generalAdmin) CanReview() bool { return true }
func (generalAdmin) ReviewsEscalations() bool { return true }
func (generalAdmin) CanDisburse() bool { return true }
func (generalAdmin) CanManageConfig() bool { return true }

func CapabilityFor(r Role) (Capability, error) {
	switch r {
	case RoleMember:
		return member{}, nil
	case RoleCountryCoordinator:
		return countryCoordinator{}, nil
	case RoleFundAdmin:
		return fundAdmin{}, nil
	case RoleGeneralAdmin:
		return generalAdmin{}, nil
	default:
		return nil, fmt.Errorf("unknown role %q", r)
	}
}

// TierFor returns the lowest role whose limit covers amount. Comparison is
// inclusive: amount exactly at a limit stays in that tier.
func TierFor(amount float64, lim ApprovalLimits) Capability {
	switch {
	case amount <= lim.CountryCoordinator:
		return countryCoordinator{}
	case amount <= lim.FundAdmin:
		return fundAdmin{}
	default:
		return generalAdmin{}
	}
}

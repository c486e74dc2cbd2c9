package access

import "slices"

// ScopeKind discriminates the shape of a Scope.
type ScopeKind int

const (
	// ScopeAll sees every novedad regardless of dependencia.
	ScopeAll ScopeKind = iota
	// ScopeSingle sees exactly one dependencia.
	ScopeSingle
	// ScopeMulti sees a fixed list of dependencias.
	ScopeMulti
	// ScopeNone sees nothing. Only produced by a strict Resolver.
	ScopeNone
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeAll:
		return "all"
	case ScopeSingle:
		return "single"
	case ScopeMulti:
		return "multi"
	case ScopeNone:
		return "none"
	}
	return "unknown"
}

// Scope is the set of dependencias visible to a role.
type Scope struct {
	Kind ScopeKind
	deps []string
}

// All returns the unrestricted scope.
func All() Scope { return Scope{Kind: ScopeAll} }

// None returns the empty scope.
func None() Scope { return Scope{Kind: ScopeNone} }

// Single returns a scope limited to one dependencia.
func Single(dep string) Scope { return Scope{Kind: ScopeSingle, deps: []string{dep}} }

// Multi returns a scope limited to deps, in the given order.
func Multi(deps ...string) Scope {
	return Scope{Kind: ScopeMulti, deps: slices.Clone(deps)}
}

// Dependencias returns a copy of the dependencias in the scope; nil for All and None.
func (s Scope) Dependencias() []string { return slices.Clone(s.deps) }

// Allows reports whether a novedad with dependencia dep falls inside the scope.
func (s Scope) Allows(dep string) bool {
	switch s.Kind {
	case ScopeAll:
		return true
	case ScopeSingle, ScopeMulti:
		return slices.Contains(s.deps, dep)
	}
	return false
}

// ScopeFor resolves a role to its scope. Roles without a row in the table
// (admin, user, user-oficiales and anything unrecognised) see every record.
func ScopeFor(role Role) Scope {
	switch role {
	case RoleOficial15:
		return Single(Comisaria15)
	case RoleOficial20:
		return Single(Comisaria20)
	case RoleOficial65:
		return Single(Comisaria65)
	case RoleOficial18:
		return Single(Comisaria18)
	case RoleOficialManzano:
		return Single(SubcomisariaElManzano)
	case RoleOficialCordon:
		return Single(SubcomisariaCordonDelPlata)
	case RoleJefTunuyan:
		return Multi(Comisaria15, Comisaria65, SubcomisariaElManzano)
	case RoleJefSanCarlos:
		return Multi(Comisaria18, Comisaria41)
	case RoleJefTupungato:
		return Multi(Comisaria20, SubcomisariaCordonDelPlata, SubcomisariaSanJose)
	case RoleAdmin, RoleUser, RoleUserOficiales:
		return All()
	default:
		return All()
	}
}

// Resolver wraps ScopeFor with the policy for roles missing from the table.
type Resolver struct {
	// Strict resolves unrecognised roles to None instead of All.
	Strict bool
	// OnUnknown, when set, is called for every unrecognised role.
	OnUnknown func(role Role)
}

// Resolve returns the scope for role under the resolver's policy.
func (r Resolver) Resolve(role Role) Scope {
	if !role.IsKnown() {
		if r.OnUnknown != nil {
			r.OnUnknown(role)
		}
		if r.Strict {
			return None()
		}
	}
	return ScopeFor(role)
}

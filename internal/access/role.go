// Package access maps user roles to the set of dependencias (precincts and
// sub-precincts) whose novedades they may see and modify.
package access

// Role is the role string stored on a Usuario and carried in session claims.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleUser           Role = "user"
	RoleUserOficiales  Role = "user-oficiales"
	RoleOficial15      Role = "OFICIAL DE 15"
	RoleOficial20      Role = "OFICIAL DE 20"
	RoleOficial65      Role = "OFICIAL DE 65"
	RoleOficial18      Role = "OFICIAL DE 18"
	RoleOficialManzano Role = "OFICIAL MANZANO HISTORICO"
	RoleOficialCordon  Role = "OFICIAL CORDON DEL PLATA"
	RoleJefTunuyan     Role = "JEF.DPTAL.TUNUYAN"
	RoleJefSanCarlos   Role = "JEF.DPTAL.SAN CARLOS"
	RoleJefTupungato   Role = "JEF.DPTAL.TUPUNGATO"
)

// Dependencia identifiers referenced by the scope table.
const (
	Comisaria15                = "comisaria_15"
	Comisaria18                = "comisaria_18"
	Comisaria20                = "comisaria_20"
	Comisaria41                = "comisaria_41"
	Comisaria65                = "comisaria_65"
	SubcomisariaElManzano      = "subcomisaria_el_manzano"
	SubcomisariaCordonDelPlata = "subcomisaria_cordon_del_plata"
	SubcomisariaSanJose        = "subcomisaria_san_jose"
)

// DefaultRole is assigned at registration when no role is supplied.
const DefaultRole = RoleUser

// KnownRoles lists every role with an explicit entry in the scope table.
func KnownRoles() []Role {
	return []Role{
		RoleAdmin, RoleUser, RoleUserOficiales,
		RoleOficial15, RoleOficial20, RoleOficial65, RoleOficial18,
		RoleOficialManzano, RoleOficialCordon,
		RoleJefTunuyan, RoleJefSanCarlos, RoleJefTupungato,
	}
}

// OfficerRoles may create, read, update and delete novedades.
func OfficerRoles() []Role {
	return []Role{
		RoleAdmin, RoleUserOficiales,
		RoleOficial15, RoleOficial20, RoleOficial65, RoleOficial18,
		RoleOficialManzano, RoleOficialCordon,
		RoleJefTunuyan, RoleJefSanCarlos, RoleJefTupungato,
	}
}

// DashboardRoles may open the departmental dashboard.
func DashboardRoles() []Role {
	return []Role{RoleAdmin, RoleJefTunuyan, RoleJefSanCarlos, RoleJefTupungato}
}

// IsKnown reports whether r has an explicit entry in the scope table.
func (r Role) IsKnown() bool {
	for _, k := range KnownRoles() {
		if k == r {
			return true
		}
	}
	return false
}

// Package policy evalúa permisos por (actor, acción, recurso) en un solo punto,
// en lugar de regar checks de rol por los handlers. Toda operación de escritura
// de los casos de uso pasa por aquí con el perfil leído FRESCO de la DB, de modo
// que desactivar un usuario surte efecto inmediato y no al expirar su token.
package policy

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// Action operación solicitada sobre un recurso.
type Action int

const (
	ActionRead Action = iota
	ActionCreate
	ActionUpdate
	ActionDelete
)

// Resource tipo de recurso protegido.
type Resource int

const (
	ResourceProfiles Resource = iota
	ResourceCategories
	ResourceProducts
	ResourceTransactions
)

// Can decide permit/deny según la tabla de permisos:
//
//	Recurso       Read            Create              Update         Delete
//	Profiles      autenticado     solo sistema        ver CanUpdateProfile   nunca
//	Categories    autenticado     admin               admin          admin
//	Products      autenticado     usuario activo      usuario activo admin
//	Transactions  autenticado     usuario activo      nunca          nunca
//
// Un actor inactivo queda bloqueado para TODA escritura, sin importar el rol.
func Can(actor *entity.Profile, action Action, resource Resource) bool {
	if actor == nil {
		return false
	}
	if action == ActionRead {
		return true
	}
	if !actor.IsActive {
		return false
	}

	switch resource {
	case ResourceProfiles:
		// Create lo hace solo el sistema en el registro; Update tiene reglas
		// por campo en CanUpdateProfile; Delete jamás vía API.
		if action == ActionUpdate {
			return actor.Role == entity.RoleAdmin
		}
		return false
	case ResourceCategories:
		return actor.Role == entity.RoleAdmin
	case ResourceProducts:
		if action == ActionDelete {
			return actor.Role == entity.RoleAdmin
		}
		return true
	case ResourceTransactions:
		return action == ActionCreate
	}
	return false
}

// CanUpdateProfile reglas por campo para perfiles: un admin activo modifica
// cualquier campo de cualquier perfil; un usuario activo solo su propio nombre.
// touchesRoleOrActive indica si el cambio incluye role o is_active.
func CanUpdateProfile(actor *entity.Profile, targetID string, touchesRoleOrActive bool) bool {
	if actor == nil || !actor.IsActive {
		return false
	}
	if actor.Role == entity.RoleAdmin {
		return true
	}
	return actor.ID == targetID && !touchesRoleOrActive
}

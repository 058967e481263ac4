package usecase

import "obradash/internal/domain/entities"

// withResponsables fills Obra.Responsable from the open assignments. Obras without one,
// or whose residente is not in residentes, get ResponsableSinAsignar.
func withResponsables(obras []entities.Obra, residentes []entities.Residente, active ActiveAssignments) []entities.Obra {
	names := make(map[string]string, len(residentes))
	for _, r := range residentes {
		names[r.ID] = r.Name
	}
	out := make([]entities.Obra, 0, len(obras))
	for _, o := range obras {
		o.Responsable = entities.ResponsableSinAsignar
		if name := names[active.ResidenteFor(o.ID)]; name != "" {
			o.Responsable = name
		}
		out = append(out, o)
	}
	return out
}

// withObraIDs fills Residente.ObraID from the open assignments ("" when unassigned).
func withObraIDs(residentes []entities.Residente, active ActiveAssignments) []entities.Residente {
	out := make([]entities.Residente, 0, len(residentes))
	for _, r := range residentes {
		r.ObraID = active.ObraFor(r.ID)
		out = append(out, r)
	}
	return out
}

// tenantAssignments keeps the assignments that touch one of the tenant's obras or
// residentes. The backend returns every tenant's asignaciones.
func tenantAssignments(assignments []entities.Assignment, obras []entities.Obra, residentes []entities.Residente) []entities.Assignment {
	obraIDs := make(map[string]struct{}, len(obras))
	for _, o := range obras {
		obraIDs[o.ID] = struct{}{}
	}
	residenteIDs := make(map[string]struct{}, len(residentes))
	for _, r := range residentes {
		residenteIDs[r.ID] = struct{}{}
	}
	out := make([]entities.Assignment, 0, len(assignments))
	for _, a := range assignments {
		_, okObra := obraIDs[a.ObraID]
		_, okResidente := residenteIDs[a.ResidenteID]
		if okObra || okResidente {
			out = append(out, a)
		}
	}
	return out
}

// ownedBy drops obras of other tenants. The backend filters by constructora_id already;
// rows without a tenant are kept.
func ownedBy(obras []entities.Obra, constructoraID string) []entities.Obra {
	out := make([]entities.Obra, 0, len(obras))
	for _, o := range obras {
		if o.ConstructoraID == "" || o.ConstructoraID == constructoraID {
			out = append(out, o)
		}
	}
	return out
}

func countActiveObras(obras []entities.Obra) int {
	n := 0
	for _, o := range obras {
		if o.IsActive() {
			n++
		}
	}
	return n
}

func countActiveResidentes(residentes []entities.Residente) int {
	n := 0
	for _, r := range residentes {
		if r.IsActive() {
			n++
		}
	}
	return n
}

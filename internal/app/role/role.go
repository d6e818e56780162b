package role

// Roles de usuario en la plataforma
type Role int

const (
	Cliente Role = iota // 0 - contrata servicios
	Proveedor
	Admin
)

func (r Role) String() string {
	switch r {
	case Cliente:
		return "cliente"
	case Proveedor:
		return "proveedor"
	case Admin:
		return "admin"
	}
	return "desconocido"
}

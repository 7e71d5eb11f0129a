package entity

// Tipos y estados de máquina.
const (
	MachineKnitting = "knitting"
	MachineDyeing   = "dyeing"

	MachineActive      = "active"
	MachineMaintenance = "maintenance"
	MachineIdle        = "idle"
)

// Machine máquina de tejido circular o de teñido.
type Machine struct {
	ID       string  `json:"id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Gauge    int     `json:"gauge"`
	Diameter float64 `json:"diameter"` // pulgadas
	Status   string  `json:"status"`
}

// Operator operario de planta.
type Operator struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Shift  string `json:"shift"`
	Active bool   `json:"active"`
}

// Ref referencia ligera genérica (máquina, operario).
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

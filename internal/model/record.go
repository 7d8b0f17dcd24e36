package model

// EmployeeRecord is the persisted form of a single employee.
type EmployeeRecord struct {
	Name      string `json:"name"`
	Hourly    bool   `json:"hourlyStatus"`
	Wage      int    `json:"wage"`
	Owed      int    `json:"currentOwnedToEmployee"`
	TotalPaid int    `json:"totalPaidToEmployee"`
}

// RosterRecord is the top level of the roster document.
type RosterRecord struct {
	Employees []EmployeeRecord `json:"employees"`
}

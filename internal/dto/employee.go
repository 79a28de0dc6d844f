package dto

import (
	"encoding/json"
)

// Employee содержит данные сотрудника в том виде, в котором они уходят в JSON.
// Порядок полей совпадает с порядком ключей в выводе.
type Employee struct {
	Name            string      `json:"name" example:"Chris DeTuma"`         // Имя сотрудника
	Email           string      `json:"email" example:"cdetuma@example.com"` // Почта сотрудника
	DateOfBirth     string      `json:"date_of_birth" example:"1998-04-02"`  // Дата рождения в формате YYYY-MM-DD
	Salary          json.Number `json:"salary" example:"123000.0"`           // Оклад, десятичное число
	Department      string      `json:"department" example:"IT"`             // Подразделение/отдел
	ElectedBenefits bool        `json:"elected_benefits" example:"true"`     // Оформлен ли соцпакет
}

package domain

// DefaultStatusID — статус, который получает новый заказ ("pending").
const DefaultStatusID int64 = 1

// Status — этап жизненного цикла заказа. Граф переходов не задаётся.
type Status struct {
	ID   int64
	Name string
}

func NewStatus(name string) *Status {
	return &Status{Name: name}
}

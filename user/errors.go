package user

import "fmt"

type (
	NotFound struct {
		ID string
	}
)

func (n NotFound) Error() string {
	return fmt.Sprintf("user %v not found", n.ID)
}

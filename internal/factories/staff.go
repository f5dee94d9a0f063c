package factories

import (
	"fmt"

	"github.com/restodata/restosim/internal/models"
)

var sections = []string{"patio", "bar", "main floor", "back room"}

// NewStaff builds the roster. Server ids carry their index digits, which the
// performance stream seeding depends on, so the id scheme is fixed.
func NewStaff(serverCount, hostCount, cookCount int) []models.StaffMember {
	staff := make([]models.StaffMember, 0, serverCount+hostCount+cookCount)

	for i := 1; i <= serverCount; i++ {
		staff = append(staff, models.StaffMember{
			ID:      fmt.Sprintf("srv-%d", i),
			Name:    fake.Person().Name(),
			Role:    models.RoleServer,
			Section: sections[(i-1)%len(sections)],
		})
	}
	for i := 1; i <= hostCount; i++ {
		staff = append(staff, models.StaffMember{
			ID:   fmt.Sprintf("hst-%d", i),
			Name: fake.Person().Name(),
			Role: models.RoleHost,
		})
	}
	for i := 1; i <= cookCount; i++ {
		staff = append(staff, models.StaffMember{
			ID:   fmt.Sprintf("cok-%d", i),
			Name: fake.Person().Name(),
			Role: models.RoleCook,
		})
	}
	return staff
}

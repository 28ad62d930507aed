package test

import (
	"github.com/wellspring-health/clinic/pointer"
	"github.com/wellspring-health/clinic/test"
	"github.com/wellspring-health/clinic/users"
)

var specializations = []string{"Oncology", "Cardiology", "Endocrinology", "General Practice"}

func RandomUser(role users.Role) *users.User {
	user := &users.User{
		UserId: test.Faker.UUID().V4(),
		Name:   test.Faker.Person().Name(),
		Email:  test.Faker.Internet().Email(),
		Role:   role,
	}
	if role == users.RoleDoctor {
		user.Specialization = pointer.FromAny(test.Faker.RandomStringElement(specializations))
	}
	return user
}

func RandomDoctor() *users.User {
	return RandomUser(users.RoleDoctor)
}

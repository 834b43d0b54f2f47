package role

import "time"

type Role struct {
	RoleName   string                   `json:"roleName" bson:"roleName"`
	RoleCode   string                   `json:"roleCode" bson:"roleCode"`
	Privileges []map[string]interface{} `json:"privileges" bson:"privileges"`
	CreatedAt  time.Time                `json:"createdAt" bson:"createdAt"`
	CreatedBy  string                   `json:"createdBy" bson:"createdBy"`
	UpdatedAt  time.Time                `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy  string                   `json:"updatedBy" bson:"updatedBy"`
}

func privilege(module string, access ...string) map[string]interface{} {
	return map[string]interface{}{"module": module, "access": access}
}

// DefaultRoles returns the four portal roles with the privileges the route
// guards check. Seeded at startup when the role collection is empty.
func DefaultRoles() []Role {
	now := time.Now()
	return []Role{
		{
			RoleName: "ADMIN",
			RoleCode: "admin",
			Privileges: []map[string]interface{}{
				privilege("hospital", "create", "update", "view", "delete"),
				privilege("doctor", "create", "update", "view", "delete"),
				privilege("patient", "view", "update"),
				privilege("schedule", "view"),
				privilege("slot", "view"),
				privilege("appointment", "view"),
				privilege("admin", "update", "delete"),
			},
			CreatedAt: now, CreatedBy: "SYSTEM", UpdatedAt: now, UpdatedBy: "SYSTEM",
		},
		{
			RoleName: "HOSPITAL_ADMIN",
			RoleCode: "hospital_admin",
			Privileges: []map[string]interface{}{
				privilege("hospital", "update", "view"),
				privilege("doctor", "create", "update", "view"),
				privilege("schedule", "view"),
				privilege("slot", "view"),
				privilege("appointment", "view"),
			},
			CreatedAt: now, CreatedBy: "SYSTEM", UpdatedAt: now, UpdatedBy: "SYSTEM",
		},
		{
			RoleName: "DOCTOR",
			RoleCode: "doctor",
			Privileges: []map[string]interface{}{
				privilege("schedule", "create", "update", "view"),
				privilege("slot", "create", "update", "view"),
				privilege("appointment", "update", "view"),
				privilege("patient", "view"),
				privilege("doctor", "view"),
			},
			CreatedAt: now, CreatedBy: "SYSTEM", UpdatedAt: now, UpdatedBy: "SYSTEM",
		},
		{
			RoleName: "PATIENT",
			RoleCode: "patient",
			Privileges: []map[string]interface{}{
				privilege("doctor", "view"),
				privilege("hospital", "view"),
				privilege("slot", "view"),
				privilege("schedule", "view"),
				privilege("appointment", "create", "update", "view"),
				privilege("patient", "update", "view"),
			},
			CreatedAt: now, CreatedBy: "SYSTEM", UpdatedAt: now, UpdatedBy: "SYSTEM",
		},
	}
}

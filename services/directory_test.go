package services

import (
	"context"
	"testing"

	"MedNetwork/models"
	"MedNetwork/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHospitalCreateProvisionsAdminAccount(t *testing.T) {
	st := store.NewMemStore()
	svc := HospitalService{Store: st, Now: fixedNow}
	ctx := context.Background()

	hospital, err := svc.Create(ctx, models.Hospital{
		Name: "City Care", Email: "citycare@example.com", Phone: "1234567890",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, hospital.ID)

	var users []models.User
	require.NoError(t, st.GetAll(ctx, store.Users, &users))
	require.Len(t, users, 1)
	account := users[0]
	assert.Equal(t, models.RoleHospitalAdmin, account.Role)
	assert.Equal(t, hospital.ID, account.HospitalID)
	assert.True(t, account.IsFirstLogin)

	// the provisioned account opens with the shared default password
	auth := AuthService{Store: st}
	logged, err := auth.Authenticate(ctx, "citycare@example.com", DefaultPassword)
	require.NoError(t, err)
	assert.True(t, logged.IsFirstLogin)
}

func TestHospitalCreateRejectsDuplicateEmail(t *testing.T) {
	st := store.NewMemStore()
	svc := HospitalService{Store: st, Now: fixedNow}
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Hospital{Name: "One", Email: "dup@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.Hospital{Name: "Two", Email: "dup@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestDoctorCreateDenormalizesHospitalName(t *testing.T) {
	st := store.NewMemStore()
	hospitals := HospitalService{Store: st, Now: fixedNow}
	ctx := context.Background()
	hospital, err := hospitals.Create(ctx, models.Hospital{Name: "City Care", Email: "cc@example.com"})
	require.NoError(t, err)

	doctors := DoctorService{Store: st, Now: fixedNow}
	doctor, err := doctors.Create(ctx, models.Doctor{
		Name: "Asha Rao", Email: "asha@example.com", Specialization: "Cardiology",
		HospitalID: hospital.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "City Care", doctor.HospitalName)

	// the doctor account shares the doctor record's id
	var users []models.User
	require.NoError(t, st.GetAll(ctx, store.Users, &users))
	require.Len(t, users, 2)
	assert.Equal(t, doctor.ID, users[1].ID)
	assert.Equal(t, models.RoleDoctor, users[1].Role)
}

func TestDoctorCreateRequiresHospital(t *testing.T) {
	st := store.NewMemStore()
	doctors := DoctorService{Store: st, Now: fixedNow}

	_, err := doctors.Create(context.Background(), models.Doctor{
		Name: "Nobody", Email: "n@example.com", HospitalID: "missing",
	})
	assert.ErrorIs(t, err, ErrUnknownHospital)
}

func TestDoctorSearchFilters(t *testing.T) {
	st := store.NewMemStore()
	hospitals := HospitalService{Store: st, Now: fixedNow}
	ctx := context.Background()
	h1, err := hospitals.Create(ctx, models.Hospital{Name: "City Care", Email: "cc2@example.com"})
	require.NoError(t, err)
	h2, err := hospitals.Create(ctx, models.Hospital{Name: "Lakeside", Email: "ls@example.com"})
	require.NoError(t, err)

	doctors := DoctorService{Store: st, Now: fixedNow}
	_, err = doctors.Create(ctx, models.Doctor{Name: "Asha Rao", Email: "a1@example.com", Specialization: "Cardiology", HospitalID: h1.ID})
	require.NoError(t, err)
	_, err = doctors.Create(ctx, models.Doctor{Name: "Binu Thomas", Email: "b1@example.com", Specialization: "Neurology", HospitalID: h2.ID})
	require.NoError(t, err)

	found, err := doctors.Search(ctx, models.SearchFilters{Specialization: "Cardiology"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Asha Rao", found[0].Name)

	found, err = doctors.Search(ctx, models.SearchFilters{DoctorName: "binu"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	found, err = doctors.Search(ctx, models.SearchFilters{HospitalName: "lake", Specialization: "Cardiology"})
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = doctors.Search(ctx, models.SearchFilters{})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestPatientRegisterCreatesPairedAccount(t *testing.T) {
	st := store.NewMemStore()
	svc := PatientService{Store: st, Now: fixedNow}
	ctx := context.Background()

	patient, err := svc.Register(ctx, SignupInput{
		Name: "Ravi", Email: "ravi@example.com", Phone: "9999999999", Password: "chosen1",
	})
	require.NoError(t, err)

	var users []models.User
	require.NoError(t, st.GetAll(ctx, store.Users, &users))
	require.Len(t, users, 1)
	assert.Equal(t, patient.ID, users[0].ID)
	assert.Equal(t, models.RolePatient, users[0].Role)
	assert.False(t, users[0].IsFirstLogin)

	auth := AuthService{Store: st}
	_, err = auth.Authenticate(ctx, "ravi@example.com", "chosen1")
	require.NoError(t, err)
}

func TestPatientRegisterRejectsDuplicateEmail(t *testing.T) {
	st := store.NewMemStore()
	svc := PatientService{Store: st, Now: fixedNow}
	ctx := context.Background()

	_, err := svc.Register(ctx, SignupInput{Name: "A", Email: "dup2@example.com", Phone: "1", Password: "x12345"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, SignupInput{Name: "B", Email: "dup2@example.com", Phone: "2", Password: "y12345"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestPatientUpdateKeepsEmail(t *testing.T) {
	st := store.NewMemStore()
	svc := PatientService{Store: st, Now: fixedNow}
	ctx := context.Background()

	patient, err := svc.Register(ctx, SignupInput{Name: "Ravi", Email: "keep@example.com", Phone: "1", Password: "x12345"})
	require.NoError(t, err)

	patient.Name = "Ravi K"
	patient.Email = "changed@example.com"
	require.NoError(t, svc.Update(ctx, patient))

	updated, err := svc.FindByID(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi K", updated.Name)
	assert.Equal(t, "keep@example.com", updated.Email)
}

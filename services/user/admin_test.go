package user

import (
	"errors"
	"testing"

	"akplaw/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo stores users as bson documents and applies updates with $set
// semantics, so omitempty behavior matches what the driver would do against
// a real collection.
type fakeUserRepo struct {
	docs map[string]bson.M
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{docs: map[string]bson.M{}}
}

func marshalUser(u *models.User) bson.M {
	raw, err := bson.Marshal(u)
	if err != nil {
		panic(err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		panic(err)
	}
	return doc
}

func unmarshalUser(doc bson.M) *models.User {
	raw, err := bson.Marshal(doc)
	if err != nil {
		panic(err)
	}
	var u models.User
	if err := bson.Unmarshal(raw, &u); err != nil {
		panic(err)
	}
	return &u
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return unmarshalUser(doc), nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, doc := range f.docs {
		if doc["email"] == email {
			return unmarshalUser(doc), nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, doc := range f.docs {
		out = append(out, *unmarshalUser(doc))
	}
	return out, nil
}

func (f *fakeUserRepo) GetByRole(role string) ([]models.User, error) {
	var out []models.User
	for _, doc := range f.docs {
		if doc["role"] == role {
			out = append(out, *unmarshalUser(doc))
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.docs[u.ID] = marshalUser(u)
	return nil
}

// Update mirrors UpdateOne with a whole-struct $set: fields the marshaler
// omits stay untouched in the stored document.
func (f *fakeUserRepo) Update(u *models.User) error {
	doc, ok := f.docs[u.ID]
	if !ok {
		return errors.New("not found")
	}
	for k, v := range marshalUser(u) {
		doc[k] = v
	}
	return nil
}

func (f *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	doc, ok := f.docs[id]
	if !ok {
		return errors.New("not found")
	}
	for k, v := range updateDoc {
		doc[k] = v
	}
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.docs, id)
	return nil
}

func seedPremierClient(repo *fakeUserRepo) models.User {
	u := models.User{
		ID:    "client-1",
		Email: "client@example.com",
		Name:  "Grace Wanjiru",
		Role:  models.RolePremier,
		Advocate: &models.AssignedAdvocate{
			Name:  "Amina Khalid",
			Email: "amina@akplaw.com",
		},
	}
	_ = repo.Create(&u)
	return u
}

func TestChangeRoleClearsAdvocateOnDowngrade(t *testing.T) {
	repo := newFakeUserRepo()
	seedPremierClient(repo)
	svc := &DefaultUserService{Repo: repo}

	u, err := svc.ChangeRole("client-1", models.RoleGeneral)
	require.NoError(t, err)

	assert.Equal(t, models.RoleGeneral, u.Role)
	assert.Nil(t, u.Advocate)
}

func TestChangeRoleDowngradePersistsClearedAdvocate(t *testing.T) {
	repo := newFakeUserRepo()
	seedPremierClient(repo)
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.ChangeRole("client-1", models.RoleGeneral)
	require.NoError(t, err)

	// Reload from storage: the sub-record must be gone there too, not
	// just on the returned struct.
	stored, err := repo.GetByID("client-1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleGeneral, stored.Role)
	assert.Nil(t, stored.Advocate)
}

func TestChangeRoleKeepsAdvocateForPremier(t *testing.T) {
	repo := newFakeUserRepo()
	seedPremierClient(repo)
	svc := &DefaultUserService{Repo: repo}

	u, err := svc.ChangeRole("client-1", models.RolePremier)
	require.NoError(t, err)
	require.NotNil(t, u.Advocate)
	assert.Equal(t, "Amina Khalid", u.Advocate.Name)

	stored, err := repo.GetByID("client-1")
	require.NoError(t, err)
	require.NotNil(t, stored.Advocate)
}

func TestChangeRoleRejectsUnknownRole(t *testing.T) {
	repo := newFakeUserRepo()
	seedPremierClient(repo)
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.ChangeRole("client-1", "superuser")
	assert.Error(t, err)
}

func TestAssignAdvocatePremierOnly(t *testing.T) {
	repo := newFakeUserRepo()
	_ = repo.Create(&models.User{
		ID:    "client-2",
		Email: "general@example.com",
		Role:  models.RoleGeneral,
	})
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.AssignAdvocate("client-2", models.AssignedAdvocate{
		Name:  "Amina Khalid",
		Email: "amina@akplaw.com",
	})
	assert.Error(t, err)
}

func TestAssignAdvocateRequiresNameAndEmail(t *testing.T) {
	repo := newFakeUserRepo()
	seedPremierClient(repo)
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.AssignAdvocate("client-1", models.AssignedAdvocate{Name: "No Email"})
	assert.Error(t, err)
}

func TestClearAdvocate(t *testing.T) {
	repo := newFakeUserRepo()
	seedPremierClient(repo)
	svc := &DefaultUserService{Repo: repo}

	u, err := svc.ClearAdvocate("client-1")
	require.NoError(t, err)
	assert.Nil(t, u.Advocate)

	stored, err := repo.GetByID("client-1")
	require.NoError(t, err)
	assert.Nil(t, stored.Advocate)
}

func TestGetUsersByRole(t *testing.T) {
	repo := newFakeUserRepo()
	seedPremierClient(repo)
	_ = repo.Create(&models.User{ID: "u-gen", Email: "gen@example.com", Role: models.RoleGeneral})
	svc := &DefaultUserService{Repo: repo}

	premier, err := svc.GetUsersByRole(models.RolePremier)
	require.NoError(t, err)
	require.Len(t, premier, 1)
	assert.Equal(t, "client-1", premier[0].ID)

	_, err = svc.GetUsersByRole("superuser")
	assert.Error(t, err)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	_ = repo.Create(&models.User{
		ID:    "existing",
		Email: "taken@example.com",
	})
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Register(RegistrationRequest{
		Email:    "taken@example.com",
		Password: "longenough",
		Name:     "Someone",
	})
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.Register(RegistrationRequest{
		Email:    "new@example.com",
		Password: "short",
		Name:     "Someone",
	})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestAuthenticateRejectsWrongPassword(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := newFakeUserRepo()
	_ = repo.Create(&models.User{
		ID:           "u1",
		Email:        "user@example.com",
		PasswordHash: string(hashed),
	})
	svc := &DefaultUserService{Repo: repo}

	_, err = svc.Authenticate("user@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateRejectsFederatedAccountPassword(t *testing.T) {
	repo := newFakeUserRepo()
	_ = repo.Create(&models.User{
		ID:        "u2",
		Email:     "federated@example.com",
		Federated: true,
	})
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Authenticate("federated@example.com", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

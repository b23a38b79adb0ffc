package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/subscription-shop/internal/models"
	"github.com/magabrotheeeer/subscription-shop/internal/services/auth"
)

// fakeUserRepo хранит пользователей в памяти и ведет себя как
// настоящее хранилище: уникальная почта, поиск с учетом роли.
type fakeUserRepo struct {
	users  []models.User
	nextID int64
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user models.User) (int64, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return 0, models.ErrDuplicateEmail
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, user)
	return user.ID, nil
}

func (f *fakeUserRepo) GetUserByEmailAndRole(_ context.Context, email string, role models.Role) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.Role == role {
			copied := u
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) CountUsersByRole(_ context.Context, role models.Role) (int, error) {
	count := 0
	for _, u := range f.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func validForm() auth.RegisterForm {
	return auth.RegisterForm{
		FirstName: "Ana",
		LastName:  "Lopez",
		Country:   "Mexico",
		Email:     "a@x.com",
		Password:  "pw123456",
	}
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	repo := &fakeUserRepo{}
	svc := auth.New(repo)

	id, err := svc.RegisterClient(ctx, validForm())
	require.NoError(t, err)
	require.NotZero(t, id)

	identity, err := svc.LoginClient(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, id, identity.ID)
	assert.Equal(t, "a@x.com", identity.Email)
	assert.Equal(t, "Ana", identity.FirstName)
	assert.Equal(t, "Lopez", identity.LastName)
	assert.Equal(t, "Mexico", identity.Country)
	assert.Equal(t, int64(0), identity.Balance, "new client starts with zero balance")
}

func TestRegisterClient_SanitizesProfileFields(t *testing.T) {
	ctx := context.Background()
	repo := &fakeUserRepo{}
	svc := auth.New(repo)

	form := validForm()
	form.FirstName = "<script>alert(1)</script>Ana"
	form.Country = "<b>Mexico</b>"

	_, err := svc.RegisterClient(ctx, form)
	require.NoError(t, err)

	require.Len(t, repo.users, 1)
	assert.Equal(t, "Ana", repo.users[0].FirstName)
	assert.Equal(t, "Mexico", repo.users[0].Country)
}

func TestRegisterClient_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := &fakeUserRepo{}
	svc := auth.New(repo)

	_, err := svc.RegisterClient(ctx, validForm())
	require.NoError(t, err)

	_, err = svc.RegisterClient(ctx, validForm())
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
}

func TestLoginClient_BadCredentialsCollapsed(t *testing.T) {
	ctx := context.Background()
	repo := &fakeUserRepo{}
	svc := auth.New(repo)

	_, err := svc.RegisterClient(ctx, validForm())
	require.NoError(t, err)

	// неизвестная почта и неверный пароль дают одну и ту же ошибку
	_, errUnknown := svc.LoginClient(ctx, "nobody@x.com", "pw123456")
	assert.ErrorIs(t, errUnknown, models.ErrBadCredentials)

	_, errWrongPw := svc.LoginClient(ctx, "a@x.com", "wrongpass")
	assert.ErrorIs(t, errWrongPw, models.ErrBadCredentials)
}

func TestLoginClient_AdminCannotUseClientLogin(t *testing.T) {
	ctx := context.Background()
	repo := &fakeUserRepo{}
	svc := auth.New(repo)

	_, err := svc.CreateAdmin(ctx, auth.AdminForm{Email: "root@x.com", Password: "pw123456"})
	require.NoError(t, err)

	_, err = svc.LoginClient(ctx, "root@x.com", "pw123456")
	assert.ErrorIs(t, err, models.ErrBadCredentials)
}

func TestCreateAdmin_OneShotGate(t *testing.T) {
	ctx := context.Background()
	repo := &fakeUserRepo{}
	svc := auth.New(repo)

	exists, err := svc.AdminExists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.CreateAdmin(ctx, auth.AdminForm{Email: "root@x.com", Password: "pw123456"})
	require.NoError(t, err)

	exists, err = svc.AdminExists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = svc.CreateAdmin(ctx, auth.AdminForm{Email: "other@x.com", Password: "pw123456"})
	assert.ErrorIs(t, err, models.ErrAdminExists)

	count, _ := repo.CountUsersByRole(ctx, models.RoleAdmin)
	assert.Equal(t, 1, count, "second setup attempt must not create another admin")

	identity, err := svc.LoginAdmin(ctx, "root@x.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, "root@x.com", identity.Email)
}

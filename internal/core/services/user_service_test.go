package services

import (
	"context"
	"errors"
	"testing"

	"insureportal/internal/adapters/persistence/models"
	"insureportal/internal/core/domain"
)

func newUserFixture(t *testing.T) (*UserService, *fakeUserRepo, domain.Actor) {
	t.Helper()

	userRepo := newFakeUserRepo()
	ctx := context.Background()

	adminUser := &models.User{FirstName: "Ada", LastName: "Admin", Email: "admin@example.com", Role: "admin"}
	if err := userRepo.Create(ctx, adminUser); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	admin := domain.Actor{ID: adminUser.ID, Role: domain.RoleAdmin}
	return NewUserService(userRepo), userRepo, admin
}

func seedUser(t *testing.T, repo *fakeUserRepo, email string) *models.User {
	t.Helper()
	u := &models.User{FirstName: "Pat", LastName: "Holder", Email: email, Role: "user"}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func strptr(s string) *string { return &s }

func TestUpdateProfileAllowList(t *testing.T) {
	svc, repo, _ := newUserFixture(t)
	user := seedUser(t, repo, "pat@example.com")

	updated, err := svc.UpdateProfile(context.Background(), user.ID, &UpdateProfileInput{
		FirstName: strptr("Patricia"),
		Phone:     strptr("+1 555 0101"),
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}

	if updated.FirstName != "Patricia" {
		t.Fatalf("first name = %q", updated.FirstName)
	}
	if updated.Phone != "+1 555 0101" {
		t.Fatalf("phone = %q", updated.Phone)
	}
	// Fields not sent stay untouched.
	if updated.LastName != "Holder" {
		t.Fatalf("last name = %q, want unchanged", updated.LastName)
	}
	if updated.Role != "user" {
		t.Fatalf("role = %q, profile update must not touch role", updated.Role)
	}
}

func TestAdminUpdateRole(t *testing.T) {
	svc, repo, _ := newUserFixture(t)
	user := seedUser(t, repo, "pat@example.com")
	ctx := context.Background()

	updated, err := svc.AdminUpdate(ctx, user.ID, &AdminUpdateUserInput{Role: strptr("admin")})
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if updated.Role != "admin" {
		t.Fatalf("role = %q, want admin", updated.Role)
	}

	if _, err := svc.AdminUpdate(ctx, user.ID, &AdminUpdateUserInput{Role: strptr("superuser")}); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("bogus role err = %v, want ErrInvalidRole", err)
	}
}

func TestDeleteUser(t *testing.T) {
	svc, repo, admin := newUserFixture(t)
	user := seedUser(t, repo, "pat@example.com")
	ctx := context.Background()

	if err := svc.Delete(ctx, admin, admin.ID); !errors.Is(err, ErrCannotDeleteSelf) {
		t.Fatalf("self delete err = %v, want ErrCannotDeleteSelf", err)
	}

	if err := svc.Delete(ctx, admin, user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("deleted user lookup err = %v, want ErrUserNotFound", err)
	}

	if err := svc.Delete(ctx, admin, 404); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("missing user delete err = %v, want ErrUserNotFound", err)
	}
}

func TestListUsersPagination(t *testing.T) {
	svc, repo, _ := newUserFixture(t)
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		seedUser(t, repo, email)
	}
	ctx := context.Background()

	// Admin seeded in the fixture makes four users total.
	page, total, err := svc.List(ctx, 0, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 4 {
		t.Fatalf("total = %d, want 4", total)
	}
	if len(page) != 2 {
		t.Fatalf("page size = %d, want 2", len(page))
	}

	last, _, err := svc.List(ctx, 2, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(last) != 2 {
		t.Fatalf("second page size = %d, want 2", len(last))
	}
	if last[0].ID == page[0].ID {
		t.Fatal("pages overlap")
	}
}

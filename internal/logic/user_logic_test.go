package logic

import (
	"errors"
	"testing"

	"github.com/GhaziTrueAlpha/Surveys/internal/model"
)

func strPtr(s string) *string { return &s }

func TestGetUsersFilters(t *testing.T) {
	db := testDB(t)
	u := NewUserLogic(db)

	seedUser(t, db, model.RoleVendor, func(m *model.User) { m.Flag = model.FlagPending })
	seedUser(t, db, model.RoleVendor, nil)
	seedUser(t, db, model.RoleClient, func(m *model.User) { m.Flag = model.FlagPending })

	all, err := u.GetUsers("", "")
	if err != nil {
		t.Fatalf("all users: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d users, want 3", len(all))
	}

	vendors, err := u.GetUsers("vendor", "")
	if err != nil {
		t.Fatalf("vendors: %v", err)
	}
	if len(vendors) != 2 {
		t.Errorf("got %d vendors, want 2", len(vendors))
	}

	pendingVendors, err := u.GetUsers("vendor", "no")
	if err != nil {
		t.Fatalf("pending vendors: %v", err)
	}
	if len(pendingVendors) != 1 {
		t.Errorf("got %d pending vendors, want 1", len(pendingVendors))
	}
}

func TestUpdateUserApproval(t *testing.T) {
	db := testDB(t)
	u := NewUserLogic(db)

	vendor := seedUser(t, db, model.RoleVendor, func(m *model.User) { m.Flag = model.FlagPending })

	// 审批供应商时同时指定类目
	updated, err := u.UpdateUser(vendor.ID, UserUpdate{
		Flag:     strPtr(model.FlagApproved),
		Category: strPtr("Healthcare Consumer"),
	})
	if err != nil {
		t.Fatalf("approve vendor: %v", err)
	}
	if updated.Flag != model.FlagApproved || updated.Category != "Healthcare Consumer" {
		t.Errorf("approval not applied: flag=%q category=%q", updated.Flag, updated.Category)
	}

	// 客户审批时可分配编码
	client := seedUser(t, db, model.RoleClient, func(m *model.User) { m.Flag = model.FlagPending })
	updated, err = u.UpdateUser(client.ID, UserUpdate{
		Flag:     strPtr(model.FlagApproved),
		UniqueID: strPtr("2034"),
	})
	if err != nil {
		t.Fatalf("approve client: %v", err)
	}
	if updated.UniqueID != "2034" {
		t.Errorf("unique id = %q, want 2034", updated.UniqueID)
	}
}

func TestUpdateUserFailures(t *testing.T) {
	db := testDB(t)
	u := NewUserLogic(db)

	if _, err := u.UpdateUser("missing-id", UserUpdate{Flag: strPtr("yes")}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("missing user err = %v, want ErrUserNotFound", err)
	}

	vendor := seedUser(t, db, model.RoleVendor, nil)
	if _, err := u.UpdateUser(vendor.ID, UserUpdate{Category: strPtr("Cryptocurrency")}); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("bad category err = %v, want ErrInvalidCategory", err)
	}
}

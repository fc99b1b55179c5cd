package logic

import (
	"errors"
	"testing"
	"time"

	"github.com/GhaziTrueAlpha/Surveys/internal/model"
)

const testOrigin = "http://localhost:8080"

func TestLetterSuffix(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{77, "BZ"},
	}
	for _, tc := range cases {
		if got := letterSuffix(tc.n); got != tc.want {
			t.Errorf("letterSuffix(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestCreateSurveyAssignsUniqueID(t *testing.T) {
	db := testDB(t)
	s := NewSurveyLogic(db, testOrigin)

	client := seedUser(t, db, model.RoleClient, func(u *model.User) { u.UniqueID = "1112" })

	survey := seedSurvey(t, db, s, client, func(sv *model.Survey) {
		sv.Category = "Education"
		sv.SurveyLink = "https://x.test/s"
	})

	if survey.UniqueID != "1112A" {
		t.Errorf("unique id = %q, want 1112A", survey.UniqueID)
	}
	if survey.MainMarketLink != testOrigin+"/survey/verify/1112A" {
		t.Errorf("market link = %q", survey.MainMarketLink)
	}
	if !survey.IsActive {
		t.Error("new survey should be active")
	}
	if survey.ClientID != client.ID || survey.CreatedBy != client.ID {
		t.Errorf("ownership not set: client_id=%q created_by=%q", survey.ClientID, survey.CreatedBy)
	}

	// 第二份问卷拿到下一个字母
	second := seedSurvey(t, db, s, client, nil)
	if second.UniqueID != "1112B" {
		t.Errorf("second unique id = %q, want 1112B", second.UniqueID)
	}
}

func TestCreateSurveyDefaultClientCode(t *testing.T) {
	db := testDB(t)
	s := NewSurveyLogic(db, testOrigin)

	// 未分配编码的客户使用默认编码1112
	client := seedUser(t, db, model.RoleClient, nil)
	survey := seedSurvey(t, db, s, client, nil)

	if survey.UniqueID != "1112A" {
		t.Errorf("unique id = %q, want 1112A", survey.UniqueID)
	}
}

func TestCreateSurveyOnBehalfOfClient(t *testing.T) {
	db := testDB(t)
	s := NewSurveyLogic(db, testOrigin)

	admin := seedUser(t, db, model.RoleAdmin, nil)
	client := seedUser(t, db, model.RoleClient, func(u *model.User) { u.UniqueID = "2200" })

	survey := seedSurvey(t, db, s, admin, func(sv *model.Survey) { sv.ClientID = client.ID })

	if survey.UniqueID != "2200A" {
		t.Errorf("unique id = %q, want 2200A", survey.UniqueID)
	}
	if survey.CreatedBy != admin.ID {
		t.Errorf("created_by = %q, want admin id", survey.CreatedBy)
	}
	if survey.ClientID != client.ID {
		t.Errorf("client_id = %q, want client id", survey.ClientID)
	}
}

func TestCreateSurveyInvalidCategory(t *testing.T) {
	db := testDB(t)
	s := NewSurveyLogic(db, testOrigin)
	client := seedUser(t, db, model.RoleClient, nil)

	err := s.CreateSurvey(client, &model.Survey{
		Title:      "Bad",
		Category:   "Cryptocurrency",
		SurveyLink: "https://x.test/s",
	})
	if !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("err = %v, want ErrInvalidCategory", err)
	}
}

func TestGetSurveysRoleScoping(t *testing.T) {
	db := testDB(t)
	s := NewSurveyLogic(db, testOrigin)

	admin := seedUser(t, db, model.RoleAdmin, nil)
	clientA := seedUser(t, db, model.RoleClient, nil)
	clientB := seedUser(t, db, model.RoleClient, nil)
	vendor := seedUser(t, db, model.RoleVendor, func(u *model.User) { u.Category = "Gaming" })

	seedSurvey(t, db, s, clientA, func(sv *model.Survey) { sv.Category = "Gaming" })
	seedSurvey(t, db, s, clientA, func(sv *model.Survey) { sv.Category = "Mobile" })
	seedSurvey(t, db, s, clientB, func(sv *model.Survey) { sv.Category = "Gaming" })

	adminList, err := s.GetSurveysFor(admin, "")
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(adminList) != 3 {
		t.Errorf("admin sees %d surveys, want 3", len(adminList))
	}

	clientList, err := s.GetSurveysFor(clientA, "")
	if err != nil {
		t.Fatalf("client list: %v", err)
	}
	if len(clientList) != 2 {
		t.Errorf("client sees %d surveys, want 2", len(clientList))
	}

	vendorList, err := s.GetSurveysFor(vendor, "")
	if err != nil {
		t.Fatalf("vendor list: %v", err)
	}
	if len(vendorList) != 2 {
		t.Errorf("vendor sees %d surveys, want 2", len(vendorList))
	}
	for _, sv := range vendorList {
		if sv.Category != "Gaming" {
			t.Errorf("vendor list contains category %q", sv.Category)
		}
	}
}

func TestUpdateSurveyAuthorization(t *testing.T) {
	db := testDB(t)
	s := NewSurveyLogic(db, testOrigin)

	admin := seedUser(t, db, model.RoleAdmin, nil)
	creator := seedUser(t, db, model.RoleClient, nil)
	other := seedUser(t, db, model.RoleClient, nil)
	survey := seedSurvey(t, db, s, creator, nil)

	newTitle := "Renamed"

	// 不存在的问卷先报404
	if _, err := s.UpdateSurvey("missing-id", other, SurveyUpdate{Title: &newTitle}); !errors.Is(err, ErrSurveyNotFound) {
		t.Errorf("missing survey err = %v, want ErrSurveyNotFound", err)
	}

	if _, err := s.UpdateSurvey(survey.ID, other, SurveyUpdate{Title: &newTitle}); !errors.Is(err, ErrForbidden) {
		t.Errorf("non-creator err = %v, want ErrForbidden", err)
	}

	updated, err := s.UpdateSurvey(survey.ID, creator, SurveyUpdate{Title: &newTitle})
	if err != nil {
		t.Fatalf("creator update: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Errorf("title = %q", updated.Title)
	}

	// 管理员可切换激活状态，两次切换回到原值
	off, on := false, true
	toggled, err := s.UpdateSurvey(survey.ID, admin, SurveyUpdate{IsActive: &off})
	if err != nil {
		t.Fatalf("admin toggle: %v", err)
	}
	if toggled.IsActive {
		t.Error("survey should be inactive after toggle")
	}
	toggled, err = s.UpdateSurvey(survey.ID, admin, SurveyUpdate{IsActive: &on})
	if err != nil {
		t.Fatalf("admin toggle back: %v", err)
	}
	if !toggled.IsActive {
		t.Error("survey should be active after second toggle")
	}
}

func TestDeleteSurveyTwice(t *testing.T) {
	db := testDB(t)
	s := NewSurveyLogic(db, testOrigin)

	creator := seedUser(t, db, model.RoleClient, nil)
	other := seedUser(t, db, model.RoleClient, nil)
	survey := seedSurvey(t, db, s, creator, nil)

	if err := s.DeleteSurvey(survey.ID, other); !errors.Is(err, ErrForbidden) {
		t.Errorf("non-creator delete err = %v, want ErrForbidden", err)
	}
	if err := s.DeleteSurvey(survey.ID, creator); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := s.DeleteSurvey(survey.ID, creator); !errors.Is(err, ErrSurveyNotFound) {
		t.Errorf("second delete err = %v, want ErrSurveyNotFound", err)
	}
}

func TestMarketplaceEligibility(t *testing.T) {
	db := testDB(t)
	s := NewSurveyLogic(db, testOrigin)
	r := NewResponseLogic(db)

	client := seedUser(t, db, model.RoleClient, nil)
	vendor := seedUser(t, db, model.RoleVendor, func(u *model.User) { u.Category = "Mobile" })

	matching := seedSurvey(t, db, s, client, nil)
	completed := seedSurvey(t, db, s, client, nil)
	inactive := seedSurvey(t, db, s, client, nil)
	seedSurvey(t, db, s, client, func(sv *model.Survey) { sv.Category = "Travel" })

	off := false
	if _, err := s.UpdateSurvey(inactive.ID, client, SurveyUpdate{IsActive: &off}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := r.CreateResponse(vendor, completed.ID, ""); err != nil {
		t.Fatalf("complete survey: %v", err)
	}

	list, err := s.Marketplace(vendor, "", SortNewest)
	if err != nil {
		t.Fatalf("marketplace: %v", err)
	}
	if len(list) != 1 || list[0].ID != matching.ID {
		t.Fatalf("marketplace = %d surveys, want exactly the matching one", len(list))
	}
}

func TestMarketplaceSearchAndSort(t *testing.T) {
	db := testDB(t)
	s := NewSurveyLogic(db, testOrigin)

	client := seedUser(t, db, model.RoleClient, nil)
	vendor := seedUser(t, db, model.RoleVendor, func(u *model.User) { u.Category = "Mobile" })

	seedSurvey(t, db, s, client, func(sv *model.Survey) {
		sv.Title = "Gadget usage"
		sv.RewardAmount = "5.50"
	})
	seedSurvey(t, db, s, client, func(sv *model.Survey) {
		sv.Title = "Phone habits"
		sv.Description = "about gadgets"
		sv.RewardAmount = "12"
	})
	seedSurvey(t, db, s, client, func(sv *model.Survey) {
		sv.Title = "Carrier satisfaction"
	})

	// 大小写不敏感，标题和描述都参与匹配
	found, err := s.Marketplace(vendor, "GADGET", SortNewest)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("search found %d, want 2", len(found))
	}

	high, err := s.Marketplace(vendor, "", SortPayoutHigh)
	if err != nil {
		t.Fatalf("sort high: %v", err)
	}
	// 缺失reward按0参与排序
	if high[0].RewardAmount != "12" || high[2].RewardAmount != "" {
		t.Errorf("payout-high order wrong: %q, %q, %q",
			high[0].RewardAmount, high[1].RewardAmount, high[2].RewardAmount)
	}

	low, err := s.Marketplace(vendor, "", SortPayoutLow)
	if err != nil {
		t.Fatalf("sort low: %v", err)
	}
	if low[0].RewardAmount != "" || low[2].RewardAmount != "12" {
		t.Errorf("payout-low order wrong: %q, %q, %q",
			low[0].RewardAmount, low[1].RewardAmount, low[2].RewardAmount)
	}
}

func TestMarketplaceSortByAge(t *testing.T) {
	db := testDB(t)
	s := NewSurveyLogic(db, testOrigin)

	client := seedUser(t, db, model.RoleClient, nil)
	vendor := seedUser(t, db, model.RoleVendor, func(u *model.User) { u.Category = "Mobile" })

	oldSurvey := seedSurvey(t, db, s, client, nil)
	newSurvey := seedSurvey(t, db, s, client, nil)

	// 拉开创建时间
	db.Model(oldSurvey).Update("created_at", time.Now().Add(-time.Hour))

	newest, err := s.Marketplace(vendor, "", SortNewest)
	if err != nil {
		t.Fatalf("newest: %v", err)
	}
	if newest[0].ID != newSurvey.ID {
		t.Error("newest sort should put recent survey first")
	}

	oldest, err := s.Marketplace(vendor, "", SortOldest)
	if err != nil {
		t.Fatalf("oldest: %v", err)
	}
	if oldest[0].ID != oldSurvey.ID {
		t.Error("oldest sort should put old survey first")
	}
}

func TestVerify(t *testing.T) {
	db := testDB(t)
	s := NewSurveyLogic(db, testOrigin)

	client := seedUser(t, db, model.RoleClient, nil)
	vendor := seedUser(t, db, model.RoleVendor, func(u *model.User) { u.Category = "Mobile" })
	otherVendor := seedUser(t, db, model.RoleVendor, func(u *model.User) { u.Category = "Travel" })

	survey := seedSurvey(t, db, s, client, func(sv *model.Survey) {
		sv.SurveyLink = "https://surveys.example.com/s/42"
	})

	if _, _, err := s.Verify("nope", vendor); !errors.Is(err, ErrSurveyNotFound) {
		t.Errorf("unknown id err = %v, want ErrSurveyNotFound", err)
	}

	outcome, _, err := s.Verify(survey.UniqueID, nil)
	if err != nil || outcome != VerifySigninRequired {
		t.Errorf("anonymous: outcome=%v err=%v, want signin required", outcome, err)
	}

	if _, _, err := s.Verify(survey.UniqueID, client); !errors.Is(err, ErrVendorsOnly) {
		t.Errorf("non-vendor err = %v, want ErrVendorsOnly", err)
	}

	outcome, _, err = s.Verify(survey.UniqueID, otherVendor)
	if err != nil || outcome != VerifySecurityViolation {
		t.Errorf("category mismatch: outcome=%v err=%v, want security violation", outcome, err)
	}

	outcome, got, err := s.Verify(survey.UniqueID, vendor)
	if err != nil || outcome != VerifyRedirect {
		t.Fatalf("eligible vendor: outcome=%v err=%v, want redirect", outcome, err)
	}
	if got.SurveyLink != "https://surveys.example.com/s/42" {
		t.Errorf("redirect target = %q", got.SurveyLink)
	}

	off := false
	if _, err := s.UpdateSurvey(survey.ID, client, SurveyUpdate{IsActive: &off}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, _, err := s.Verify(survey.UniqueID, vendor); !errors.Is(err, ErrSurveyInactive) {
		t.Errorf("inactive err = %v, want ErrSurveyInactive", err)
	}
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal-backend/internal/domains/audit"
	auditmodel "newsportal-backend/internal/domains/audit/model"
	"newsportal-backend/internal/domains/profile/model"
	"newsportal-backend/internal/shared"
)

type fakeAccessLogRepo struct {
	entries []*auditmodel.AccessLog
}

func (r *fakeAccessLogRepo) Insert(_ context.Context, entry *auditmodel.AccessLog) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeAccessLogRepo) ListSince(_ context.Context, since time.Time, limit int) ([]*auditmodel.AccessLog, error) {
	var out []*auditmodel.AccessLog
	for _, e := range r.entries {
		if e.CreatedAt.After(since) && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeAccessLogRepo) PurgeOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var kept []*auditmodel.AccessLog
	var purged int64
	for _, e := range r.entries {
		if e.CreatedAt.Before(cutoff) {
			purged++
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
	return purged, nil
}

func callerFor(profile *model.Profile) shared.Caller {
	return shared.Caller{ID: profile.ID, Email: profile.Email, Role: profile.Role}
}

func newTestAdminService(repo *fakeProfileRepo) AdminServiceInterface {
	return NewAdminService(repo, &fakeAccessLogRepo{}, audit.NopRecorder{})
}

// =====================================================
// PERMISSIONS
// =====================================================

func TestAdminActionsRequireStoredAdminRole(t *testing.T) {
	repo := newFakeProfileRepo()
	editor := repo.seed("editor@example.com", "senha-segura", model.RoleEditor)
	target := repo.seed("leitor@example.com", "senha-segura", model.RoleSubscriber)
	svc := newTestAdminService(repo)

	_, err := svc.UpdateRole(context.Background(), callerFor(editor), target.ID, model.RoleAuthor)
	assert.ErrorIs(t, err, model.ErrForbidden)

	_, err = svc.SetBanned(context.Background(), callerFor(editor), target.ID, true)
	assert.ErrorIs(t, err, model.ErrForbidden)

	_, _, err = svc.ListUsers(context.Background(), callerFor(editor), 1, 20)
	assert.ErrorIs(t, err, model.ErrForbidden)

	_, err = svc.GetStats(context.Background(), callerFor(editor))
	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestAdminCheckUsesStoredRoleNotClaim(t *testing.T) {
	repo := newFakeProfileRepo()
	demoted := repo.seed("ex-admin@example.com", "senha-segura", model.RoleSubscriber)
	target := repo.seed("leitor@example.com", "senha-segura", model.RoleSubscriber)
	svc := newTestAdminService(repo)

	// The token still says admin; the stored role decides.
	caller := shared.Caller{ID: demoted.ID, Email: demoted.Email, Role: model.RoleAdmin}

	_, err := svc.UpdateRole(context.Background(), caller, target.ID, model.RoleAuthor)

	assert.ErrorIs(t, err, model.ErrForbidden)
}

// =====================================================
// UPDATE ROLE
// =====================================================

func TestUpdateRolePromotesUser(t *testing.T) {
	repo := newFakeProfileRepo()
	admin := repo.seed("admin@example.com", "senha-segura", model.RoleAdmin)
	target := repo.seed("leitor@example.com", "senha-segura", model.RoleSubscriber)
	svc := newTestAdminService(repo)

	updated, err := svc.UpdateRole(context.Background(), callerFor(admin), target.ID, model.RoleEditor)

	require.NoError(t, err)
	assert.Equal(t, model.RoleEditor, updated.Role)
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	repo := newFakeProfileRepo()
	admin := repo.seed("admin@example.com", "senha-segura", model.RoleAdmin)
	target := repo.seed("leitor@example.com", "senha-segura", model.RoleSubscriber)
	svc := newTestAdminService(repo)

	_, err := svc.UpdateRole(context.Background(), callerFor(admin), target.ID, "superuser")

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidRole)
	assert.Equal(t, model.RoleSubscriber, repo.profiles[target.ID].Role)
}

func TestUpdateRoleCannotAssignAuthor(t *testing.T) {
	repo := newFakeProfileRepo()
	admin := repo.seed("admin@example.com", "senha-segura", model.RoleAdmin)
	target := repo.seed("leitor@example.com", "senha-segura", model.RoleSubscriber)
	svc := newTestAdminService(repo)

	// Author accounts are provisioned via create_user; promotion only
	// grants subscriber, editor or admin.
	_, err := svc.UpdateRole(context.Background(), callerFor(admin), target.ID, model.RoleAuthor)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidRole)
	assert.Equal(t, model.RoleSubscriber, repo.profiles[target.ID].Role)
}

// =====================================================
// BAN / UNBAN
// =====================================================

func TestBanSetsTimestamp(t *testing.T) {
	repo := newFakeProfileRepo()
	admin := repo.seed("admin@example.com", "senha-segura", model.RoleAdmin)
	target := repo.seed("leitor@example.com", "senha-segura", model.RoleSubscriber)
	svc := newTestAdminService(repo)

	banned, err := svc.SetBanned(context.Background(), callerFor(admin), target.ID, true)

	require.NoError(t, err)
	require.NotNil(t, banned.BannedAt)
	assert.True(t, banned.IsBanned())
}

func TestUnbanClearsTimestamp(t *testing.T) {
	repo := newFakeProfileRepo()
	admin := repo.seed("admin@example.com", "senha-segura", model.RoleAdmin)
	target := repo.seed("leitor@example.com", "senha-segura", model.RoleSubscriber)
	svc := newTestAdminService(repo)

	_, err := svc.SetBanned(context.Background(), callerFor(admin), target.ID, true)
	require.NoError(t, err)

	unbanned, err := svc.SetBanned(context.Background(), callerFor(admin), target.ID, false)

	require.NoError(t, err)
	assert.Nil(t, unbanned.BannedAt)
}

func TestAdminCannotBanThemselves(t *testing.T) {
	repo := newFakeProfileRepo()
	admin := repo.seed("admin@example.com", "senha-segura", model.RoleAdmin)
	svc := newTestAdminService(repo)

	_, err := svc.SetBanned(context.Background(), callerFor(admin), admin.ID, true)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrForbidden)
	assert.Nil(t, repo.profiles[admin.ID].BannedAt)
}

// =====================================================
// CREATE USER
// =====================================================

func TestCreateUserWithExplicitRole(t *testing.T) {
	repo := newFakeProfileRepo()
	admin := repo.seed("admin@example.com", "senha-segura", model.RoleAdmin)
	svc := newTestAdminService(repo)

	profile, err := svc.CreateUser(context.Background(), callerFor(admin), model.CreateUserRequest{
		Email:       "Redator@Example.com",
		Password:    "senha-segura",
		DisplayName: "Redator",
		Role:        model.RoleAuthor,
	})

	require.NoError(t, err)
	assert.Equal(t, model.RoleAuthor, profile.Role)
	assert.Equal(t, "redator@example.com", profile.Email)
}

func TestCreateUserDefaultsToSubscriber(t *testing.T) {
	repo := newFakeProfileRepo()
	admin := repo.seed("admin@example.com", "senha-segura", model.RoleAdmin)
	svc := newTestAdminService(repo)

	profile, err := svc.CreateUser(context.Background(), callerFor(admin), model.CreateUserRequest{
		Email:       "novo@example.com",
		Password:    "senha-segura",
		DisplayName: "Novo Usuário",
	})

	require.NoError(t, err)
	assert.Equal(t, model.RoleSubscriber, profile.Role)
}

// =====================================================
// STATS
// =====================================================

func TestGetStatsCountsByRole(t *testing.T) {
	repo := newFakeProfileRepo()
	admin := repo.seed("admin@example.com", "senha-segura", model.RoleAdmin)
	repo.seed("editor@example.com", "senha-segura", model.RoleEditor)
	banned := repo.seed("banido@example.com", "senha-segura", model.RoleSubscriber)
	svc := newTestAdminService(repo)

	_, err := svc.SetBanned(context.Background(), callerFor(admin), banned.ID, true)
	require.NoError(t, err)

	stats, err := svc.GetStats(context.Background(), callerFor(admin))

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.BannedUsers)
	assert.Equal(t, int64(1), stats.ByRole[model.RoleAdmin])
	assert.Equal(t, int64(1), stats.ByRole[model.RoleEditor])
	assert.Equal(t, int64(1), stats.ByRole[model.RoleSubscriber])
}

func TestGetStatsIncludesRecentActivity(t *testing.T) {
	repo := newFakeProfileRepo()
	admin := repo.seed("admin@example.com", "senha-segura", model.RoleAdmin)

	actorID := uuid.New()
	logs := &fakeAccessLogRepo{entries: []*auditmodel.AccessLog{
		{
			ID:        uuid.New(),
			ActorID:   &actorID,
			Action:    "article_publish",
			Resource:  uuid.NewString(),
			Success:   true,
			CreatedAt: time.Now().Add(-time.Hour),
		},
		{
			ID:        uuid.New(),
			Action:    "article_publish",
			Resource:  uuid.NewString(),
			Success:   true,
			CreatedAt: time.Now().AddDate(0, 0, -30), // outside the window
		},
	}}
	svc := NewAdminService(repo, logs, audit.NopRecorder{})

	stats, err := svc.GetStats(context.Background(), callerFor(admin))

	require.NoError(t, err)
	require.Len(t, stats.RecentLogs, 1)
	assert.Equal(t, "article_publish", stats.RecentLogs[0].Action)
	assert.Equal(t, &actorID, stats.RecentLogs[0].ActorID)
}

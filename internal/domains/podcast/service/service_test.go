package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal-backend/internal/domains/audit"
	"newsportal-backend/internal/domains/podcast/model"
	"newsportal-backend/internal/shared"
)

type fakePodcastRepo struct {
	podcasts     map[uuid.UUID]*model.Podcast
	publishCalls int
}

func newFakePodcastRepo() *fakePodcastRepo {
	return &fakePodcastRepo{podcasts: map[uuid.UUID]*model.Podcast{}}
}

func (r *fakePodcastRepo) Create(_ context.Context, podcast *model.Podcast) error {
	cp := *podcast
	r.podcasts[podcast.ID] = &cp
	return nil
}

func (r *fakePodcastRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Podcast, error) {
	podcast, ok := r.podcasts[id]
	if !ok {
		return nil, model.ErrPodcastNotFound
	}
	cp := *podcast
	return &cp, nil
}

func (r *fakePodcastRepo) GetPublishedBySlug(_ context.Context, slug string) (*model.Podcast, error) {
	for _, p := range r.podcasts {
		if p.Slug == slug && p.Status == model.StatusPublished {
			cp := *p
			return &cp, nil
		}
	}
	return nil, model.ErrPodcastNotFound
}

func (r *fakePodcastRepo) Update(_ context.Context, podcast *model.Podcast) error {
	if _, ok := r.podcasts[podcast.ID]; !ok {
		return model.ErrPodcastNotFound
	}
	cp := *podcast
	r.podcasts[podcast.ID] = &cp
	return nil
}

func (r *fakePodcastRepo) Publish(_ context.Context, podcast *model.Podcast) error {
	if _, ok := r.podcasts[podcast.ID]; !ok {
		return model.ErrPodcastNotFound
	}
	r.publishCalls++
	cp := *podcast
	r.podcasts[podcast.ID] = &cp
	return nil
}

func (r *fakePodcastRepo) SetFeatured(_ context.Context, id uuid.UUID, featured bool) error {
	podcast, ok := r.podcasts[id]
	if !ok {
		return model.ErrPodcastNotFound
	}
	podcast.IsFeatured = featured
	return nil
}

func (r *fakePodcastRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.podcasts[id]; !ok {
		return model.ErrPodcastNotFound
	}
	delete(r.podcasts, id)
	return nil
}

func (r *fakePodcastRepo) List(_ context.Context, status, _ string, _, _ int) ([]*model.Podcast, int, error) {
	var out []*model.Podcast
	for _, p := range r.podcasts {
		if status == "" || p.Status == status {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, len(out), nil
}

func (r *fakePodcastRepo) ListFeatured(_ context.Context, _ int) ([]*model.Podcast, error) {
	var out []*model.Podcast
	for _, p := range r.podcasts {
		if p.IsFeatured && p.Status == model.StatusPublished {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type staticPodcastRoles map[uuid.UUID]string

func (r staticPodcastRoles) GetRole(_ context.Context, userID uuid.UUID) (string, error) {
	if role, ok := r[userID]; ok {
		return role, nil
	}
	return "subscriber", nil
}

func newTestPodcastService(repo *fakePodcastRepo, roles staticPodcastRoles) ServiceInterface {
	return NewPodcastService(repo, roles, audit.NopRecorder{})
}

func podcastHost(role string, roles staticPodcastRoles) shared.Caller {
	id := uuid.New()
	roles[id] = role
	return shared.Caller{ID: id, Email: "apresentador@example.com", Role: role}
}

func TestCreatePodcastStartsAsDraft(t *testing.T) {
	repo := newFakePodcastRepo()
	roles := staticPodcastRoles{}
	svc := newTestPodcastService(repo, roles)
	caller := podcastHost("author", roles)

	podcast, err := svc.Create(context.Background(), caller, model.CreatePodcastRequest{
		Title:           "Resumo da Semana",
		Description:     "As principais notícias da semana em dez minutos.",
		AudioURL:        "https://cdn.example.com/episodios/resumo-01.mp3",
		DurationSeconds: 600,
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, podcast.Status)
	assert.Equal(t, caller.ID, podcast.AuthorID)
	assert.Regexp(t, `^resumo-da-semana-\d+$`, podcast.Slug)
	assert.Nil(t, podcast.PublishedAt)
}

func TestPublishRequiresAudio(t *testing.T) {
	repo := newFakePodcastRepo()
	roles := staticPodcastRoles{}
	svc := newTestPodcastService(repo, roles)
	caller := podcastHost("author", roles)

	created, err := svc.Create(context.Background(), caller, model.CreatePodcastRequest{
		Title:       "Episódio Sem Áudio",
		Description: "Ainda em produção.",
	})
	require.NoError(t, err)

	_, err = svc.Publish(context.Background(), caller, created.ID)

	assert.ErrorIs(t, err, model.ErrAudioRequired)
	var podcastErr *model.PodcastError
	require.ErrorAs(t, err, &podcastErr)
	assert.Equal(t, model.ErrCodeAudioRequired, podcastErr.Code)
	assert.Equal(t, model.StatusDraft, repo.podcasts[created.ID].Status)
	assert.Zero(t, repo.publishCalls)
}

func TestPublishSetsStatusAndTimestamp(t *testing.T) {
	repo := newFakePodcastRepo()
	roles := staticPodcastRoles{}
	svc := newTestPodcastService(repo, roles)
	caller := podcastHost("author", roles)

	created, err := svc.Create(context.Background(), caller, model.CreatePodcastRequest{
		Title:           "Resumo da Semana",
		AudioURL:        "https://cdn.example.com/episodios/resumo-01.mp3",
		DurationSeconds: 600,
	})
	require.NoError(t, err)

	published, err := svc.Publish(context.Background(), caller, created.ID)

	require.NoError(t, err)
	assert.Equal(t, model.StatusPublished, published.Status)
	require.NotNil(t, published.PublishedAt)
	assert.Equal(t, 1, repo.publishCalls)
}

func TestFeatureRequiresEditorialRole(t *testing.T) {
	repo := newFakePodcastRepo()
	roles := staticPodcastRoles{}
	svc := newTestPodcastService(repo, roles)
	author := podcastHost("author", roles)

	created, err := svc.Create(context.Background(), author, model.CreatePodcastRequest{
		Title:    "Resumo da Semana",
		AudioURL: "https://cdn.example.com/episodios/resumo-01.mp3",
	})
	require.NoError(t, err)

	_, err = svc.Feature(context.Background(), author, created.ID)
	assert.ErrorIs(t, err, model.ErrForbidden)
	assert.False(t, repo.podcasts[created.ID].IsFeatured)

	editor := podcastHost("editor", roles)
	featured, err := svc.Feature(context.Background(), editor, created.ID)
	require.NoError(t, err)
	assert.True(t, featured.IsFeatured)
}

func TestFeatureUsesStoredRoleNotClaim(t *testing.T) {
	repo := newFakePodcastRepo()
	roles := staticPodcastRoles{}
	svc := newTestPodcastService(repo, roles)
	author := podcastHost("author", roles)

	created, err := svc.Create(context.Background(), author, model.CreatePodcastRequest{
		Title:    "Resumo da Semana",
		AudioURL: "https://cdn.example.com/episodios/resumo-01.mp3",
	})
	require.NoError(t, err)

	// Token still claims editor, but the stored role was demoted.
	demoted := shared.Caller{ID: uuid.New(), Role: "editor"}
	roles[demoted.ID] = "subscriber"

	_, err = svc.Feature(context.Background(), demoted, created.ID)

	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestGetPublishedBySlugIgnoresDrafts(t *testing.T) {
	repo := newFakePodcastRepo()
	roles := staticPodcastRoles{}
	svc := newTestPodcastService(repo, roles)
	caller := podcastHost("author", roles)

	created, err := svc.Create(context.Background(), caller, model.CreatePodcastRequest{
		Title:    "Resumo da Semana",
		AudioURL: "https://cdn.example.com/episodios/resumo-01.mp3",
	})
	require.NoError(t, err)

	_, err = svc.GetPublishedBySlug(context.Background(), created.Slug)
	assert.ErrorIs(t, err, model.ErrPodcastNotFound)

	_, err = svc.Publish(context.Background(), caller, created.ID)
	require.NoError(t, err)

	found, err := svc.GetPublishedBySlug(context.Background(), created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gazinassis/opshub-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCollaboratorRepo struct {
	collaborators []*models.Collaborator
}

func (f *fakeCollaboratorRepo) Create(_ context.Context, c *models.Collaborator) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	f.collaborators = append(f.collaborators, c)
	return nil
}

func (f *fakeCollaboratorRepo) Update(_ context.Context, c *models.Collaborator) error {
	for i, existing := range f.collaborators {
		if existing.ID == c.ID {
			f.collaborators[i] = c
			return nil
		}
	}
	return errors.New("collaborator not found")
}

func (f *fakeCollaboratorRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Collaborator, error) {
	for _, c := range f.collaborators {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.New("collaborator not found")
}

func (f *fakeCollaboratorRepo) FindAll(_ context.Context) ([]*models.Collaborator, error) {
	return f.collaborators, nil
}

func (f *fakeCollaboratorRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, c := range f.collaborators {
		if c.ID == id {
			f.collaborators = append(f.collaborators[:i], f.collaborators[i+1:]...)
			return nil
		}
	}
	return errors.New("collaborator not found")
}

func directoryFixture() *fakeCollaboratorRepo {
	return &fakeCollaboratorRepo{collaborators: []*models.Collaborator{
		{ID: primitive.NewObjectID(), Name: "Ana Carolina Silva", Position: "Gerente de Vendas"},
		{ID: primitive.NewObjectID(), Name: "Carlos Eduardo Santos", Position: "Coordenador de TI"},
		{ID: primitive.NewObjectID(), Name: "Maria Fernanda Costa", Position: "Analista de RH"},
	}}
}

func TestSearchCollaboratorsByName(t *testing.T) {
	svc := NewCollaboratorService(directoryFixture())

	found, err := svc.SearchCollaborators(context.Background(), "carlos")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Carlos Eduardo Santos", found[0].Name)
}

func TestSearchCollaboratorsByPosition(t *testing.T) {
	svc := NewCollaboratorService(directoryFixture())

	found, err := svc.SearchCollaborators(context.Background(), "VENDAS")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Ana Carolina Silva", found[0].Name)
}

func TestSearchCollaboratorsEmptyTermReturnsAll(t *testing.T) {
	svc := NewCollaboratorService(directoryFixture())

	found, err := svc.SearchCollaborators(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, found, 3)
}

func TestSearchCollaboratorsNoMatch(t *testing.T) {
	svc := NewCollaboratorService(directoryFixture())

	found, err := svc.SearchCollaborators(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, found)
}

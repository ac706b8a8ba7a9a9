// Package fixture provides the demo dataset used to seed an empty board in
// development: one project board with four columns and a handful of cards.
package fixture

import (
	"time"

	"github.com/npaulus/kanban-server/internal/domain"
)

func date(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(value string) *time.Time {
	t := date(value)
	return &t
}

// Users returns the demo users.
func Users() []domain.User {
	return []domain.User{
		{
			ID:     "1",
			Name:   "Jean Dupont",
			Email:  "jean.dupont@example.com",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Jean",
		},
		{
			ID:     "2",
			Name:   "Marie Martin",
			Email:  "marie.martin@example.com",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Marie",
		},
		{
			ID:     "3",
			Name:   "Pierre Durand",
			Email:  "pierre.durand@example.com",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Pierre",
		},
	}
}

// Labels returns the demo labels.
func Labels() []domain.Label {
	return []domain.Label{
		{ID: "1", Name: "Urgent", Color: "#ef4444"},
		{ID: "2", Name: "Bug", Color: "#f59e0b"},
		{ID: "3", Name: "Feature", Color: "#10b981"},
		{ID: "4", Name: "Documentation", Color: "#3b82f6"},
		{ID: "5", Name: "Review", Color: "#8b5cf6"},
	}
}

// Boards returns the demo boards.
func Boards() []domain.Board {
	return []domain.Board{
		{
			ID:          "1",
			Title:       "Projet Web Application",
			Description: "Développement d'une application web collaborative avec Kanban board",
			MemberIDs:   []string{"1", "2", "3"},
			OwnerID:     "1",
			IsPublic:    false,
			CreatedAt:   date("2024-01-01T00:00:00Z"),
			UpdatedAt:   date("2024-12-01T00:00:00Z"),
		},
	}
}

// Columns returns the demo columns.
func Columns() []domain.Column {
	created := date("2024-01-01T00:00:00Z")
	return []domain.Column{
		{ID: "1", Title: "À faire", BoardID: "1", Position: 0, Color: "#6b7280", CreatedAt: created, UpdatedAt: created},
		{ID: "2", Title: "En cours", BoardID: "1", Position: 1, Color: "#3b82f6", CreatedAt: created, UpdatedAt: created},
		{ID: "3", Title: "En revue", BoardID: "1", Position: 2, Color: "#f59e0b", CreatedAt: created, UpdatedAt: created},
		{ID: "4", Title: "Terminé", BoardID: "1", Position: 3, Color: "#10b981", CreatedAt: created, UpdatedAt: created},
	}
}

// Cards returns the demo cards.
func Cards() []domain.Card {
	return []domain.Card{
		{
			ID:              "1",
			Title:           "Créer l'interface d'authentification",
			Description:     "Implémenter le login/logout avec JWT et gestion des sessions",
			ColumnID:        "1",
			BoardID:         "1",
			Position:        0,
			LabelIDs:        []string{"1", "3"},
			AssignedUserIDs: []string{"1"},
			DueDate:         datePtr("2024-12-15T00:00:00Z"),
			Comments:        []domain.Comment{},
			Attachments:     []domain.Attachment{},
			CreatedAt:       date("2024-12-01T00:00:00Z"),
			UpdatedAt:       date("2024-12-01T00:00:00Z"),
			CreatedBy:       "1",
		},
		{
			ID:              "2",
			Title:           "Développer le drag & drop",
			Description:     "Permettre le déplacement des cartes entre colonnes",
			ColumnID:        "2",
			BoardID:         "1",
			Position:        0,
			LabelIDs:        []string{"3"},
			AssignedUserIDs: []string{"2"},
			DueDate:         datePtr("2024-12-10T00:00:00Z"),
			Comments:        []domain.Comment{},
			Attachments:     []domain.Attachment{},
			CreatedAt:       date("2024-12-02T00:00:00Z"),
			UpdatedAt:       date("2024-12-05T00:00:00Z"),
			CreatedBy:       "2",
		},
		{
			ID:              "3",
			Title:           "Corriger le bug de pagination",
			Description:     "La pagination ne fonctionne pas correctement sur mobile",
			ColumnID:        "1",
			BoardID:         "1",
			Position:        1,
			LabelIDs:        []string{"1", "2"},
			AssignedUserIDs: []string{"3"},
			DueDate:         datePtr("2024-12-08T00:00:00Z"),
			Comments:        []domain.Comment{},
			Attachments:     []domain.Attachment{},
			CreatedAt:       date("2024-12-03T00:00:00Z"),
			UpdatedAt:       date("2024-12-03T00:00:00Z"),
			CreatedBy:       "3",
		},
		{
			ID:              "4",
			Title:           "Optimiser les performances",
			Description:     "Réduire le temps de chargement des tableaux",
			ColumnID:        "3",
			BoardID:         "1",
			Position:        0,
			LabelIDs:        []string{"5"},
			AssignedUserIDs: []string{"1", "2"},
			Comments:        []domain.Comment{},
			Attachments:     []domain.Attachment{},
			CreatedAt:       date("2024-12-04T00:00:00Z"),
			UpdatedAt:       date("2024-12-06T00:00:00Z"),
			CreatedBy:       "1",
		},
	}
}

// State assembles the full demo state with the demo board selected.
func State() *domain.BoardState {
	s := domain.NewState()
	s.Boards = Boards()
	s.Columns = Columns()
	s.Cards = Cards()
	s.Users = Users()
	s.Labels = Labels()
	s.CurrentBoardID = "1"
	return s
}

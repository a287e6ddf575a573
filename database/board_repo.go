package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/ideaboard-backend/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type BoardRepo struct {
	db *gorm.DB
}

func NewBoardRepo(db *gorm.DB) *BoardRepo {
	return &BoardRepo{db}
}

// FindAll returns all boards ordered by creation time together with the
// number of ideas each one owns. Both are read concurrently.
func (r *BoardRepo) FindAll(ctx context.Context) ([]models.Board, map[uuid.UUID]int64, error) {
	var (
		boards []models.Board
		counts map[uuid.UUID]int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.WithContext(gctx).Order("created_at, id").Find(&boards).Error
	})
	g.Go(func() error {
		var err error
		counts, err = r.ideaCounts(gctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return boards, counts, nil
}

// FindByID returns a board by its ID
func (r *BoardRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Board, error) {
	var board models.Board
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&board).Error; err != nil {
		return nil, notFound(err, "Board not found")
	}
	return &board, nil
}

// FindWithIdeas returns a board and its ideas ordered by creation time
func (r *BoardRepo) FindWithIdeas(ctx context.Context, id uuid.UUID) (*models.Board, error) {
	var board models.Board
	err := r.db.WithContext(ctx).
		Preload("Ideas", func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }).
		Where("id = ?", id).
		First(&board).Error
	if err != nil {
		return nil, notFound(err, "Board not found")
	}
	return &board, nil
}

// CountIdeas returns the number of ideas currently owned by the board
func (r *BoardRepo) CountIdeas(ctx context.Context, id uuid.UUID) (int64, error) {
	counts, err := r.ideaCounts(ctx, []uuid.UUID{id})
	if err != nil {
		return 0, err
	}
	return counts[id], nil
}

func (r *BoardRepo) ideaCounts(ctx context.Context, boardIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	var rows []struct {
		BoardID uuid.UUID
		Count   int64
	}

	query := r.db.WithContext(ctx).
		Model(&models.Idea{}).
		Select("board_id, COUNT(*) AS count").
		Where("board_id IS NOT NULL")
	if boardIDs != nil {
		query = query.Where("board_id IN ?", boardIDs)
	}
	if err := query.Group("board_id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.BoardID] = row.Count
	}
	return counts, nil
}

// Add inserts a new board into the database
func (r *BoardRepo) Add(ctx context.Context, board *models.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

// Update applies the given column changes and refreshes updated_at.
// Columns missing from changes are left untouched.
func (r *BoardRepo) Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Board, error) {
	var board models.Board
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&board).Error; err != nil {
			return notFound(err, "Board not found")
		}

		columns := make(map[string]any, len(changes)+1)
		for column, value := range changes {
			columns[column] = value
		}
		columns["updated_at"] = time.Now()

		if err := tx.Model(&board).Updates(columns).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&board).Error
	})
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// Delete removes a board together with its ideas, their tag links and every
// connection touching those ideas, and its groups. Ideas from other boards that
// sat in one of those groups are released, not deleted.
func (r *BoardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var board models.Board
		if err := tx.Where("id = ?", id).First(&board).Error; err != nil {
			return notFound(err, "Board not found")
		}

		boardIdeas := tx.Model(&models.Idea{}).Select("id").Where("board_id = ?", id)
		boardGroups := tx.Model(&models.IdeaGroup{}).Select("id").Where("board_id = ?", id)

		if err := tx.Exec("DELETE FROM "+models.IdeaTagsTable+" WHERE idea_id IN (?)", boardIdeas).Error; err != nil {
			return err
		}
		if err := tx.Where("source_id IN (?) OR target_id IN (?)", boardIdeas, boardIdeas).Delete(&models.IdeaConnection{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Idea{}).Where("group_id IN (?)", boardGroups).Update("group_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&models.Idea{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&models.IdeaGroup{}).Error; err != nil {
			return err
		}
		return tx.Delete(&board).Error
	})
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/domain/repository"
)

const (
	// GuestUsername is the placeholder name clients send for anonymous players
	GuestUsername = "Guest"

	maxUsernameLength = 64
	guestSuffixLength = 8
	guestAlphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// ErrPlayerNotFound is returned when a player does not exist
var ErrPlayerNotFound = errors.New("player not found")

// CreatePlayerInput represents the input for resolving a player
type CreatePlayerInput struct {
	Username string `json:"username" binding:"required,max=64"`
}

// PlayerUsecase defines the interface for player resolution
type PlayerUsecase interface {
	// GetOrCreate returns the player with username, creating it if needed.
	// The bool reports whether a new player was created.
	GetOrCreate(ctx context.Context, username string) (*entity.Player, bool, error)
	GetByID(ctx context.Context, id int64) (*entity.Player, error)
}

type playerUsecase struct {
	playerRepo repository.PlayerRepository
}

// NewPlayerUsecase creates a new player usecase
func NewPlayerUsecase(playerRepo repository.PlayerRepository) PlayerUsecase {
	return &playerUsecase{playerRepo: playerRepo}
}

func (u *playerUsecase) GetOrCreate(ctx context.Context, username string) (*entity.Player, bool, error) {
	name, err := resolveUsername(username)
	if err != nil {
		return nil, false, err
	}

	player, err := u.playerRepo.GetByUsername(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if player != nil {
		return player, false, nil
	}

	player = entity.NewGuestPlayer(name)
	if err := u.playerRepo.Create(ctx, player); err != nil {
		if !errors.Is(err, repository.ErrDuplicateKey) {
			return nil, false, err
		}
		// Lost a race with a concurrent create for the same name
		existing, getErr := u.playerRepo.GetByUsername(ctx, name)
		if getErr != nil {
			return nil, false, getErr
		}
		if existing == nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	return player, true, nil
}

func (u *playerUsecase) GetByID(ctx context.Context, id int64) (*entity.Player, error) {
	player, err := u.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	return player, nil
}

// resolveUsername trims the name and replaces an empty or placeholder
// name with a generated guest name
func resolveUsername(username string) (string, error) {
	name := strings.TrimSpace(username)
	if name == "" || name == GuestUsername {
		suffix, err := gonanoid.Generate(guestAlphabet, guestSuffixLength)
		if err != nil {
			return "", fmt.Errorf("generate guest name: %w", err)
		}
		return GuestUsername + "_" + suffix, nil
	}
	if utf8.RuneCountInString(name) > maxUsernameLength {
		return "", fmt.Errorf("%w: username longer than %d characters", ErrInvalidRequest, maxUsernameLength)
	}
	return name, nil
}

package apperror

import "errors"

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrNoLegalMove  = errors.New("no legal move")
	ErrGameFinished = errors.New("game is already finished")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidBoard = errors.New("invalid board")

	ErrUnknownPlayer = errors.New("unknown player kind")
	ErrInputClosed   = errors.New("input closed")
)

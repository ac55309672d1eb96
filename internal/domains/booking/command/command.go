// Package command implements the booking lifecycle transitions as a static
// name-to-handler registry. Every handler runs inside exactly one write
// transaction: lock the booking by id and etag, run the action's rule list,
// mutate, and let the transaction runner commit or roll back as a whole.
package command

//go:generate go run go.uber.org/mock/mockgen -source=./command.go -destination=../mocks/command_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clubhouse/config"
	"clubhouse/infras/otel"
	"clubhouse/infras/postgres"
	"clubhouse/internal/domains/booking/model"
	"clubhouse/internal/domains/booking/model/dto"
	"clubhouse/internal/domains/booking/repository"
	"clubhouse/internal/domains/booking/rules"
	"clubhouse/shared/constant"
	"clubhouse/shared/failure"
	"clubhouse/shared/timezone"
	"clubhouse/shared/validator"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	EndSession    = "END_SESSION"
	RemoveSession = "REMOVE_SESSION"
	ChangeTime    = "CHANGE_TIME"
	ChangeCourt   = "CHANGE_COURT"
)

// Processor dispatches a lifecycle command against a booking and returns the
// booking's calendar date so callers can invalidate their day views.
type Processor interface {
	Execute(ctx context.Context, id int64, cmd dto.PatchCommand) (dto.PatchBookingResponse, error)
}

type handlerFunc func(ctx context.Context, tx *sqlx.Tx, id int64, params json.RawMessage, reqTime time.Time) (string, error)

type processorImpl struct {
	repo     repository.Booking
	txRunner postgres.TxRunner
	checker  rules.Checker
	otel     otel.Otel
	handlers map[string]handlerFunc
}

func New(repo repository.Booking, txRunner postgres.TxRunner, cfg *config.Config, otel otel.Otel) Processor {
	p := &processorImpl{
		repo:     repo,
		txRunner: txRunner,
		checker:  rules.NewChecker(cfg),
		otel:     otel,
	}

	p.handlers = map[string]handlerFunc{
		EndSession:    p.endSession,
		RemoveSession: p.removeSession,
		ChangeTime:    p.changeTime,
		ChangeCourt:   p.changeCourt,
	}

	return p
}

// Execute resolves the command name before touching storage; unsupported
// names never open a transaction. The request time is captured exactly once
// and every comparison inside the transaction uses it.
func (p *processorImpl) Execute(ctx context.Context, id int64, cmd dto.PatchCommand) (res dto.PatchBookingResponse, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExecuteCommand")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("command", cmd.Name)

	handler, ok := p.handlers[cmd.Name]
	if !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("unsupported command %q", cmd.Name)) //nolint:wrapcheck
	}

	reqTime := timezone.Now()

	err = p.txRunner.WithinTx(ctx, func(tx *sqlx.Tx) error {
		date, err := handler(ctx, tx, id, cmd.Params, reqTime)
		if err != nil {
			return err
		}

		res.Date = date

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("booking", id).Str("command", cmd.Name).Msg("command failed")

		return dto.PatchBookingResponse{}, err
	}

	return res, nil
}

// endSession truncates an in-progress booking to the current local time.
func (p *processorImpl) endSession(ctx context.Context, tx *sqlx.Tx, id int64, params json.RawMessage, reqTime time.Time) (string, error) {
	var req dto.EndSessionParams
	if err := validator.Validate(bytes.NewReader(params), &req); err != nil {
		return "", err
	}

	snapshot, err := p.repo.GetForUpdate(ctx, tx, id, req.Etag, reqTime)
	if err != nil {
		return "", err
	}

	if reasons := p.checker.CheckEnd(rules.EndView(snapshot)); len(reasons) > 0 {
		return "", failure.PermissionDenied(rules.ActionEnd.String(), reasons[0]) //nolint:wrapcheck
	}

	if err := p.repo.SetEnd(ctx, tx, id, snapshot.LocReqTime); err != nil {
		return "", err
	}

	return snapshot.Date, nil
}

// removeSession flips the booking inactive. Rows are never deleted.
func (p *processorImpl) removeSession(ctx context.Context, tx *sqlx.Tx, id int64, params json.RawMessage, reqTime time.Time) (string, error) {
	var req dto.RemoveSessionParams
	if err := validator.Validate(bytes.NewReader(params), &req); err != nil {
		return "", err
	}

	snapshot, err := p.repo.GetForUpdate(ctx, tx, id, req.Etag, reqTime)
	if err != nil {
		return "", err
	}

	if reasons := p.checker.CheckCancel(rules.CancelView(snapshot)); len(reasons) > 0 {
		return "", failure.PermissionDenied(rules.ActionCancel.String(), reasons[0]) //nolint:wrapcheck
	}

	if err := p.repo.Deactivate(ctx, tx, id); err != nil {
		return "", err
	}

	return snapshot.Date, nil
}

// changeTime deactivates the original row and re-creates the booking at the
// new time on the same court. The replacement passes the full create gauntlet
// again; any failure rolls the deactivation back with it.
func (p *processorImpl) changeTime(ctx context.Context, tx *sqlx.Tx, id int64, params json.RawMessage, reqTime time.Time) (string, error) {
	var req dto.ChangeTimeParams
	if err := validator.Validate(bytes.NewReader(params), &req); err != nil {
		return "", err
	}

	snapshot, err := p.repo.GetForUpdate(ctx, tx, id, req.Etag, reqTime)
	if err != nil {
		return "", err
	}

	if reasons := p.checker.CheckMove(rules.MoveView(snapshot)); len(reasons) > 0 {
		return "", failure.PermissionDenied(rules.ActionMove.String(), reasons[0]) //nolint:wrapcheck
	}

	if err := p.repo.Deactivate(ctx, tx, id); err != nil {
		return "", err
	}

	candidate := replacementOf(snapshot)
	candidate.Start = req.Start
	candidate.End = req.End

	if _, err := p.createReplacement(ctx, tx, candidate, reqTime); err != nil {
		return "", err
	}

	return snapshot.Date, nil
}

// changeCourt moves a booking to another court. A wholly future booking is
// re-created on the new court. An in-progress booking is split: the original
// is truncated to end now and the remainder is inserted on the new court, so
// the session keeps its remaining duration. Both halves must pass create
// validation and overlap-freedom on their own.
func (p *processorImpl) changeCourt(ctx context.Context, tx *sqlx.Tx, id int64, params json.RawMessage, reqTime time.Time) (string, error) {
	var req dto.ChangeCourtParams
	if err := validator.Validate(bytes.NewReader(params), &req); err != nil {
		return "", err
	}

	snapshot, err := p.repo.GetForUpdate(ctx, tx, id, req.Etag, reqTime)
	if err != nil {
		return "", err
	}

	if req.Court == snapshot.CourtID {
		return "", failure.BadRequestFromString("Court has not changed") //nolint:wrapcheck
	}

	if reasons := p.checker.CheckMove(rules.MoveView(snapshot)); len(reasons) > 0 {
		return "", failure.PermissionDenied(rules.ActionMove.String(), reasons[0]) //nolint:wrapcheck
	}

	if snapshot.UTCStart > snapshot.UTCReqTime {
		if err := p.repo.Deactivate(ctx, tx, id); err != nil {
			return "", err
		}

		candidate := replacementOf(snapshot)
		candidate.CourtID = req.Court

		if _, err := p.createReplacement(ctx, tx, candidate, reqTime); err != nil {
			return "", err
		}

		return snapshot.Date, nil
	}

	// Split. The truncated original must itself hold up as a valid booking.
	truncated := rules.CreateView(snapshot)
	truncated.UTCEnd = snapshot.UTCReqTime
	truncated.InSchedule = true

	if reasons := p.checker.CheckCreate(truncated); len(reasons) > 0 {
		return "", failure.PermissionDenied(rules.ActionMove.String(), reasons[0]) //nolint:wrapcheck
	}

	if err := p.repo.SetEnd(ctx, tx, id, snapshot.LocReqTime); err != nil {
		return "", err
	}

	remainder := replacementOf(snapshot)
	remainder.CourtID = req.Court
	remainder.Start = snapshot.LocReqTime

	if _, err := p.createReplacement(ctx, tx, remainder, reqTime); err != nil {
		return "", err
	}

	return snapshot.Date, nil
}

// createReplacement runs a candidate through the same gauntlet as the create
// flow: server-side snapshot, create rules, locked overlap check, insert.
func (p *processorImpl) createReplacement(ctx context.Context, tx *sqlx.Tx, candidate model.NewBooking, reqTime time.Time) (int64, error) {
	snapshot, err := p.repo.ComputeNew(ctx, tx, candidate, reqTime)
	if err != nil {
		return 0, err
	}

	if reasons := p.checker.CheckCreate(rules.CreateView(snapshot)); len(reasons) > 0 {
		return 0, failure.PermissionDenied(rules.ActionCreate.String(), reasons[0]) //nolint:wrapcheck
	}

	overlaps, err := p.repo.Overlapping(ctx, tx, candidate.CourtID, candidate.Date, candidate.Start, candidate.End)
	if err != nil {
		return 0, err
	}

	if len(overlaps) > 0 {
		return 0, failure.Conflict(fmt.Sprintf("booking overlaps %d existing booking(s)", len(overlaps))) //nolint:wrapcheck
	}

	return p.repo.Insert(ctx, tx, candidate)
}

// replacementOf copies everything a re-created booking keeps from the
// original: court, date, interval, type, flags, notes, players.
func replacementOf(snapshot model.Snapshot) model.NewBooking {
	players := make([]model.NewPlayer, len(snapshot.Players))
	for i, player := range snapshot.Players {
		players[i] = model.NewPlayer{
			PersonID:     player.PersonID,
			PlayerTypeID: player.PlayerTypeID,
			MemberRoleID: player.PersonRoleID,
		}
	}

	return model.NewBooking{
		CourtID:  snapshot.CourtID,
		Date:     snapshot.Date,
		Start:    snapshot.Start,
		End:      snapshot.End,
		TypeID:   snapshot.TypeID,
		Bumpable: snapshot.Bumpable,
		Notes:    snapshot.Notes,
		Players:  players,
	}
}

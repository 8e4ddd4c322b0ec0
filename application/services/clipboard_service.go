// Package services contains the application services orchestrating the
// domain against the boundary ports.
package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"flowpad/application/ports"
	"flowpad/domain/clipboard"
	pkgerrors "flowpad/pkg/errors"
)

// Operation names reported to logs and metrics.
const (
	operationCut   = "cut"
	operationCopy  = "copy"
	operationPaste = "paste"
)

// PasteOptions controls selection handling during a paste
type PasteOptions struct {
	// SetSelected clears the current selection before pasting and marks the
	// rebuilt items selected afterwards.
	SetSelected bool
}

// DefaultPasteOptions returns the options used by the editor's paste action
func DefaultPasteOptions() PasteOptions {
	return PasteOptions{SetSelected: true}
}

// ClipboardService orchestrates cut, copy and paste against the scene.
//
// Every operation is a single atomic sequence from the scene's point of view:
// it is triggered on the editor's event dispatch path and runs to completion
// with no suspension between reading the selection and writing the store.
// Recoverable conditions (empty selection, empty clipboard) are absorbed here
// and surfaced only as warning-level logs; invariant violations abort the
// operation and propagate.
type ClipboardService struct {
	scene     ports.Scene
	viewport  ports.ViewPort
	store     ports.ClipboardStore
	snapshots *clipboard.SnapshotBuilder
	placement *clipboard.PlacementSolver
	rebinder  *clipboard.Rebinder
	metrics   ports.MetricsRecorder
	logger    *zap.Logger
}

// NewClipboardService creates a new service instance
func NewClipboardService(
	scene ports.Scene,
	viewport ports.ViewPort,
	store ports.ClipboardStore,
	metrics ports.MetricsRecorder,
	logger *zap.Logger,
) *ClipboardService {
	return &ClipboardService{
		scene:     scene,
		viewport:  viewport,
		store:     store,
		snapshots: clipboard.NewSnapshotBuilder(),
		placement: clipboard.NewPlacementSolver(),
		rebinder:  clipboard.NewRebinder(),
		metrics:   metrics,
		logger:    logger,
	}
}

// Cut snapshots the selection into the clipboard and deletes the originals.
// With nothing selected the clipboard collapses to absent and the scene is
// left untouched.
func (s *ClipboardService) Cut(ctx context.Context) error {
	started := time.Now()
	err := s.cut(ctx)
	s.metrics.RecordClipboardOperation(operationCut, time.Since(started), err)
	return err
}

func (s *ClipboardService) cut(_ context.Context) error {
	nodes, links := s.scene.SelectedItems()
	payload := s.snapshots.Snapshot(nodes, links)

	if !s.store.Store(payload) {
		s.logger.Debug("cut with empty selection, clipboard cleared")
		return nil
	}

	// Originals go away only once the payload is accepted.
	s.scene.DeleteSelectedItems()

	s.logger.Info("cut selection to clipboard",
		zap.Int("blocks", len(payload.Blocks)),
		zap.Int("edges", len(payload.Edges)),
	)
	return nil
}

// Copy snapshots the selection into the clipboard without mutating the scene
func (s *ClipboardService) Copy(ctx context.Context) error {
	started := time.Now()
	err := s.copy(ctx)
	s.metrics.RecordClipboardOperation(operationCopy, time.Since(started), err)
	return err
}

func (s *ClipboardService) copy(_ context.Context) error {
	nodes, links := s.scene.SelectedItems()
	payload := s.snapshots.Snapshot(nodes, links)

	if !s.store.Store(payload) {
		s.logger.Debug("copy with empty selection, clipboard cleared")
		return nil
	}

	s.logger.Info("copied selection to clipboard",
		zap.Int("blocks", len(payload.Blocks)),
		zap.Int("edges", len(payload.Edges)),
	)
	return nil
}

// Paste rebuilds the stored payload into the scene, centered on the pointer,
// using the default selection handling.
func (s *ClipboardService) Paste(ctx context.Context) error {
	return s.PasteWithOptions(ctx, DefaultPasteOptions())
}

// PasteWithOptions rebuilds the stored payload into the scene, centered on
// the pointer. Pasting with an empty clipboard is a warning-level no-op. The
// stored payload is never mutated; repeated pastes each produce independent
// identities at the pointer position current at the time.
func (s *ClipboardService) PasteWithOptions(ctx context.Context, opts PasteOptions) error {
	started := time.Now()
	err := s.paste(ctx, opts)
	s.metrics.RecordClipboardOperation(operationPaste, time.Since(started), err)
	return err
}

func (s *ClipboardService) paste(_ context.Context, opts PasteOptions) error {
	payload, ok := s.store.Retrieve()
	if !ok {
		s.logger.Warn("paste requested with an empty clipboard")
		return nil
	}

	center, err := s.placement.BoundingBoxCenter(payload.Blocks)
	if err != nil {
		// Unreachable for stored payloads; the store rejects empty ones.
		return pkgerrors.Wrap(err, "anchoring clipboard payload")
	}
	target := s.viewport.LastPointerPosition()
	translation := s.placement.TranslationFor(center, target)

	if opts.SetSelected {
		s.scene.ClearSelection()
	}

	nodes, links, err := s.rebinder.Rebuild(payload, s.scene, translation)
	if err != nil {
		return pkgerrors.Wrap(err, "pasting clipboard payload")
	}

	if opts.SetSelected {
		s.scene.SelectItems(nodes, links)
	}

	s.scene.HistoryCheckpoint("paste elements into scene", true)
	s.metrics.RecordPaste(len(nodes), len(links))

	s.logger.Info("pasted clipboard payload",
		zap.Int("nodes", len(nodes)),
		zap.Int("links", len(links)),
		zap.Float64("x", target.X()),
		zap.Float64("y", target.Y()),
	)
	return nil
}

package server

import (
	"bytes"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"

	"github.com/nume-crypto/inventory-privacy/circuits"
	"github.com/nume-crypto/inventory-privacy/commitment"
	"github.com/nume-crypto/inventory-privacy/inventory"
	"github.com/nume-crypto/inventory-privacy/internal/logger"
	"github.com/nume-crypto/inventory-privacy/snark"
)

// slotRequest is one (item_id, quantity) pair as received over the wire.
type slotRequest struct {
	ItemID   uint32 `json:"item_id"`
	Quantity uint64 `json:"quantity"`
}

func toInventory(slots []slotRequest) inventory.Inventory {
	items := make([][2]uint64, len(slots))
	for i, slot := range slots {
		items[i] = [2]uint64{uint64(slot.ItemID), slot.Quantity}
	}
	return inventory.FromItems(items)
}

// parseField parses a decimal-string field element for a required field.
// It supplies no default: an empty or malformed s is returned as an error
// (fresh random blindings come from generateBlinding instead).
func parseField(s string) (fr.Element, error) {
	var e fr.Element
	_, err := e.SetString(s)
	return e, err
}

// health handles GET /health.
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// createCommitmentRequest is the body for POST /api/commitment/create.
type createCommitmentRequest struct {
	Slots    []slotRequest `json:"slots"`
	Blinding string        `json:"blinding"`
}

func (s *Server) createCommitment(c *gin.Context) {
	var req createCommitmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blinding, err := parseField(req.Blinding)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blinding: " + err.Error()})
		return
	}

	inv := toInventory(req.Slots)
	params := s.hashParams()
	result := commitment.Commit(inv, blinding, params)
	resultBytes := result.Bytes()

	c.JSON(http.StatusOK, gin.H{"commitment": resultBytes[:]})
}

// generateBlinding handles POST /api/blinding/generate: a fresh
// cryptographically random field element, generated here (the thin
// CLI/server layer) rather than by any core package, per the design notes'
// blinding-reuse resolution.
func (s *Server) generateBlinding(c *gin.Context) {
	var blinding fr.Element
	if _, err := blinding.SetRandom(); err != nil {
		logger.Logger().Error().Err(err).Msg("failed to generate blinding")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate blinding"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blinding": blinding.String()})
}

type proveItemExistsRequest struct {
	Slots       []slotRequest `json:"slots"`
	Blinding    string        `json:"blinding"`
	ItemID      uint32        `json:"item_id"`
	MinQuantity uint64        `json:"min_quantity"`
}

func (s *Server) proveItemExists(c *gin.Context) {
	var req proveItemExistsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blinding, err := parseField(req.Blinding)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blinding: " + err.Error()})
		return
	}

	inv := toInventory(req.Slots)
	params := s.hashParams()
	commit := commitment.Commit(inv, blinding, params)

	witness := circuits.NewItemExistsCircuit(inv, blinding, commit, req.ItemID, req.MinQuantity)
	ccs, err := snark.Compile(&circuits.ItemExistsCircuit{})
	if err != nil {
		logger.Logger().Error().Err(err).Msg("failed to compile item-exists circuit")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compile circuit"})
		return
	}
	proof, err := snark.Prove(ccs, s.keys.ItemExists, witness)
	if err != nil {
		logger.Logger().Warn().Err(err).Msg("item-exists proof generation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	commitBytes := commit.Bytes()
	c.JSON(http.StatusOK, gin.H{
		"commitment": commitBytes[:],
		"proof":      proofToHex(proof),
	})
}

type proveEvolveRequest struct {
	OldSlots    []slotRequest `json:"old_slots"`
	NewSlots    []slotRequest `json:"new_slots"`
	OldBlinding string        `json:"old_blinding"`
	NewBlinding string        `json:"new_blinding"`
	ItemID      uint32        `json:"item_id"`
	Amount      uint64        `json:"amount"`
}

func (s *Server) parseEvolveRequest(c *gin.Context) (req proveEvolveRequest, oldInv, newInv inventory.Inventory, oldBlinding, newBlinding fr.Element, ok bool) {
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, oldInv, newInv, oldBlinding, newBlinding, false
	}

	var err error
	oldBlinding, err = parseField(req.OldBlinding)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid old_blinding: " + err.Error()})
		return req, oldInv, newInv, oldBlinding, newBlinding, false
	}
	newBlinding, err = parseField(req.NewBlinding)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid new_blinding: " + err.Error()})
		return req, oldInv, newInv, oldBlinding, newBlinding, false
	}

	oldInv = toInventory(req.OldSlots)
	newInv = toInventory(req.NewSlots)
	return req, oldInv, newInv, oldBlinding, newBlinding, true
}

func (s *Server) proveWithdraw(c *gin.Context) {
	req, oldInv, newInv, oldBlinding, newBlinding, ok := s.parseEvolveRequest(c)
	if !ok {
		return
	}

	params := s.hashParams()
	oldCommit := commitment.Commit(oldInv, oldBlinding, params)
	newCommit := commitment.Commit(newInv, newBlinding, params)

	witness := circuits.NewWithdrawCircuit(oldInv, newInv, oldBlinding, newBlinding, oldCommit, newCommit, req.ItemID, req.Amount)
	ccs, err := snark.Compile(&circuits.WithdrawCircuit{})
	if err != nil {
		logger.Logger().Error().Err(err).Msg("failed to compile withdraw circuit")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compile circuit"})
		return
	}
	proof, err := snark.Prove(ccs, s.keys.Withdraw, witness)
	if err != nil {
		logger.Logger().Warn().Err(err).Msg("withdraw proof generation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	oldBytes, newBytes := oldCommit.Bytes(), newCommit.Bytes()
	c.JSON(http.StatusOK, gin.H{
		"old_commitment": oldBytes[:],
		"new_commitment": newBytes[:],
		"proof":          proofToHex(proof),
	})
}

func (s *Server) proveDeposit(c *gin.Context) {
	req, oldInv, newInv, oldBlinding, newBlinding, ok := s.parseEvolveRequest(c)
	if !ok {
		return
	}

	params := s.hashParams()
	oldCommit := commitment.Commit(oldInv, oldBlinding, params)
	newCommit := commitment.Commit(newInv, newBlinding, params)

	witness := circuits.NewDepositCircuit(oldInv, newInv, oldBlinding, newBlinding, oldCommit, newCommit, req.ItemID, req.Amount)
	ccs, err := snark.Compile(&circuits.DepositCircuit{})
	if err != nil {
		logger.Logger().Error().Err(err).Msg("failed to compile deposit circuit")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compile circuit"})
		return
	}
	proof, err := snark.Prove(ccs, s.keys.Deposit, witness)
	if err != nil {
		logger.Logger().Warn().Err(err).Msg("deposit proof generation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	oldBytes, newBytes := oldCommit.Bytes(), newCommit.Bytes()
	c.JSON(http.StatusOK, gin.H{
		"old_commitment": oldBytes[:],
		"new_commitment": newBytes[:],
		"proof":          proofToHex(proof),
	})
}

type proveTransferRequest struct {
	SrcOldSlots              []slotRequest `json:"src_old_slots"`
	SrcNewSlots              []slotRequest `json:"src_new_slots"`
	DstOldSlots              []slotRequest `json:"dst_old_slots"`
	DstNewSlots              []slotRequest `json:"dst_new_slots"`
	SrcOldBlinding           string        `json:"src_old_blinding"`
	SrcNewBlinding           string        `json:"src_new_blinding"`
	DstOldBlinding           string        `json:"dst_old_blinding"`
	DstNewBlinding           string        `json:"dst_new_blinding"`
	ItemID                   uint32        `json:"item_id"`
	Amount                   uint64        `json:"amount"`
}

func (s *Server) proveTransfer(c *gin.Context) {
	var req proveTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	srcOldBlinding, err := parseField(req.SrcOldBlinding)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid src_old_blinding: " + err.Error()})
		return
	}
	srcNewBlinding, err := parseField(req.SrcNewBlinding)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid src_new_blinding: " + err.Error()})
		return
	}
	dstOldBlinding, err := parseField(req.DstOldBlinding)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dst_old_blinding: " + err.Error()})
		return
	}
	dstNewBlinding, err := parseField(req.DstNewBlinding)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dst_new_blinding: " + err.Error()})
		return
	}

	srcOld := toInventory(req.SrcOldSlots)
	srcNew := toInventory(req.SrcNewSlots)
	dstOld := toInventory(req.DstOldSlots)
	dstNew := toInventory(req.DstNewSlots)

	params := s.hashParams()
	srcOldCommit := commitment.Commit(srcOld, srcOldBlinding, params)
	srcNewCommit := commitment.Commit(srcNew, srcNewBlinding, params)
	dstOldCommit := commitment.Commit(dstOld, dstOldBlinding, params)
	dstNewCommit := commitment.Commit(dstNew, dstNewBlinding, params)

	witness := circuits.NewTransferCircuit(circuits.TransferWitness{
		SrcOld: srcOld, SrcNew: srcNew, DstOld: dstOld, DstNew: dstNew,
		SrcOldBlinding: srcOldBlinding, SrcNewBlinding: srcNewBlinding,
		DstOldBlinding: dstOldBlinding, DstNewBlinding: dstNewBlinding,
		SrcOldCommitment: srcOldCommit, SrcNewCommitment: srcNewCommit,
		DstOldCommitment: dstOldCommit, DstNewCommitment: dstNewCommit,
		ItemID: req.ItemID, Amount: req.Amount,
	})

	ccs, err := snark.Compile(&circuits.TransferCircuit{})
	if err != nil {
		logger.Logger().Error().Err(err).Msg("failed to compile transfer circuit")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compile circuit"})
		return
	}
	proof, err := snark.Prove(ccs, s.keys.Transfer, witness)
	if err != nil {
		logger.Logger().Warn().Err(err).Msg("transfer proof generation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	srcOldBytes, srcNewBytes := srcOldCommit.Bytes(), srcNewCommit.Bytes()
	dstOldBytes, dstNewBytes := dstOldCommit.Bytes(), dstNewCommit.Bytes()
	c.JSON(http.StatusOK, gin.H{
		"src_old_commitment": srcOldBytes[:],
		"src_new_commitment": srcNewBytes[:],
		"dst_old_commitment": dstOldBytes[:],
		"dst_new_commitment": dstNewBytes[:],
		"proof":              proofToHex(proof),
	})
}

// proofToHex serializes a proof with gnark's own WriterTo binary encoding
// and hex-encodes the result, since raw binary doesn't round-trip through
// JSON.
func proofToHex(proof groth16.Proof) string {
	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		logger.Logger().Error().Err(err).Msg("failed to serialize proof")
		return ""
	}
	return hex.EncodeToString(buf.Bytes())
}

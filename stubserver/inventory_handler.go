package stubserver

import (
	"net/http"

	"hostel/models"
	"hostel/utils"
)

// ---------- assets ----------

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, s.store.ListAssets())
}

func (s *Server) handleCreateAsset(w http.ResponseWriter, r *http.Request) {
	var draft models.AssetDraft
	if err := utils.ParseJSONBody(r, &draft); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := s.validate.Struct(draft); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset input")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, s.store.CreateAsset(draft))
}

func (s *Server) handleUpdateAsset(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset id")
		return
	}
	var draft models.AssetDraft
	if err := utils.ParseJSONBody(r, &draft); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := s.validate.Struct(draft); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset input")
		return
	}

	asset, err := s.store.UpdateAsset(id, draft)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err, "Asset not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, asset)
}

func (s *Server) handleDeleteAsset(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset id")
		return
	}
	if err := s.store.DeleteAsset(id); err != nil {
		utils.RespondError(w, http.StatusNotFound, err, "Asset not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMarkDamaged(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset id")
		return
	}

	asset, err := s.store.MarkAssetDamaged(id)
	if err == errNotFound {
		utils.RespondError(w, http.StatusNotFound, err, "Asset not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "All items are already damaged")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"asset":   asset,
		"message": "Asset marked as damaged",
	})
}

// ---------- rooms ----------

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, s.store.ListRooms())
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var draft models.RoomDraft
	if err := utils.ParseJSONBody(r, &draft); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := s.validate.Struct(draft); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid room input")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, s.store.CreateRoom(draft))
}

func (s *Server) handleUpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid room id")
		return
	}
	var draft models.RoomDraft
	if err := utils.ParseJSONBody(r, &draft); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := s.validate.Struct(draft); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid room input")
		return
	}

	room, err := s.store.UpdateRoom(id, draft)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err, "Room not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, room)
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid room id")
		return
	}
	if err := s.store.DeleteRoom(id); err != nil {
		utils.RespondError(w, http.StatusNotFound, err, "Room not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------- damage reports ----------

func (s *Server) handleListDamageReports(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, s.store.ListDamageReports())
}

func (s *Server) handleCreateDamageReport(w http.ResponseWriter, r *http.Request) {
	var draft models.DamageReportDraft
	if err := utils.ParseJSONBody(r, &draft); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if err := s.validate.Struct(draft); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid damage report input")
		return
	}

	report, err := s.store.CreateDamageReport(draft)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Room not found")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, report)
}

func (s *Server) handleUpdateDamageReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid report id")
		return
	}
	var incoming models.DamageReport
	if err := utils.ParseJSONBody(r, &incoming); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	report, err := s.store.UpdateDamageReport(id, incoming)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err, "Damage report not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, report)
}

func (s *Server) handleDeleteDamageReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid report id")
		return
	}
	if err := s.store.DeleteDamageReport(id); err != nil {
		utils.RespondError(w, http.StatusNotFound, err, "Damage report not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------- dashboard ----------

func (s *Server) handleDashboardSummary(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, s.store.Summary())
}

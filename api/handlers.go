package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/urban-viz/bikeflow/controller"
	"github.com/urban-viz/bikeflow/scene"
)

type healthResponse struct {
	Status   string `json:"status"`
	Stations int    `json:"stations"`
}

type stationTraffic struct {
	ID           string  `json:"id"`
	Lon          float64 `json:"lon"`
	Lat          float64 `json:"lat"`
	Arrivals     int     `json:"arrivals"`
	Departures   int     `json:"departures"`
	TotalTraffic int     `json:"totalTraffic"`
	Radius       float64 `json:"radius"`
	Tooltip      string  `json:"tooltip"`
}

type snapshotResponse struct {
	FilterMinute int              `json:"filterMinute"`
	FilterLabel  string           `json:"filterLabel"`
	MaxTraffic   int              `json:"maxTraffic"`
	Stations     []stationTraffic `json:"stations"`
}

func (s *Server) handleHealth(c *gin.Context) {
	s.mu.Lock()
	n := len(s.ctrl.Stations())
	s.mu.Unlock()
	c.JSON(http.StatusOK, healthResponse{Status: "ok", Stations: n})
}

// handleStations returns the current snapshot. A minute query parameter is
// a slider event: it moves the filter before the snapshot is taken.
// minute=-1 clears the filter.
func (s *Server) handleStations(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, ok := c.GetQuery("minute"); ok {
		minute, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minute must be an integer"})
			return
		}
		log.Printf("slider event: minute=%d", minute)
		s.ctrl.OnSliderInput(minute)
	}

	resp := snapshotResponse{
		FilterMinute: s.ctrl.TimeFilter(),
		FilterLabel:  controller.UnsetLabel,
		MaxTraffic:   s.ctrl.Scale().MaxTraffic(),
	}
	if s.ctrl.FilterActive() {
		resp.FilterLabel = controller.FormatMinute(s.ctrl.TimeFilter())
	}
	for _, st := range s.ctrl.Stations() {
		resp.Stations = append(resp.Stations, stationTraffic{
			ID:           st.ID,
			Lon:          st.Lon,
			Lat:          st.Lat,
			Arrivals:     st.Arrivals,
			Departures:   st.Departures,
			TotalTraffic: st.TotalTraffic,
			Radius:       s.ctrl.Scale().Radius(st.TotalTraffic, s.ctrl.FilterActive()),
			Tooltip:      scene.TooltipText(st),
		})
	}
	c.JSON(http.StatusOK, resp)
}

package handler

import (
	"interview-platform-be/internal/constant"
	"interview-platform-be/internal/pkg/logger"
	"interview-platform-be/internal/pkg/serverutils"
	"interview-platform-be/internal/service"
	internalWS "interview-platform-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// RoomHandler upgrades room websocket connections. Seat roles come from the
// handshake: an authenticated interviewer token yields the interviewer seat,
// everyone else sits down as the interviewee.
type RoomHandler struct {
	roomService service.IRoomService
	hub         *internalWS.Hub
	logger      logger.ILogger
}

func NewRoomHandler(roomService service.IRoomService, hub *internalWS.Hub, log logger.ILogger) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
		hub:         hub,
		logger:      log,
	}
}

func (h *RoomHandler) ServeWs(c *fiber.Ctx) error {
	roomId := c.Params("id")

	// Gate before hijacking the connection: unknown and closed rooms never
	// get a socket.
	if err := h.roomService.CheckJoinable(c.UserContext(), roomId); err != nil {
		return err
	}

	principal := serverutils.PrincipalFromCtx(c)
	role := constant.RoleInterviewee
	clientId := c.Query("client_id")
	if principal.CanInterview() {
		role = constant.RoleInterviewer
		clientId = principal.UserID
	}
	if clientId == "" {
		clientId = uuid.NewString()
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("RoomHandler", "Room socket attached", map[string]interface{}{
				"room_id": roomId,
				"role":    role,
			})
			internalWS.ServeWs(h.hub, conn, roomId, role, clientId)
			h.logger.Info("RoomHandler", "Room socket detached", map[string]interface{}{
				"room_id": roomId,
				"role":    role,
			})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *RoomHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/interview/v1/:id/ws", serverutils.OptionalJwtMiddleware, h.ServeWs)
}

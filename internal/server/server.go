package server

// Server объединяет HTTP-серверы отдельных сущностей. Сейчас он один - PinServer.
type Server struct {
	PinServer
}

func NewServer(
	pinServer PinServer,
) Server {
	return Server{
		PinServer: pinServer,
	}
}

// Package websocket connects subjects to WebSocket endpoints: a Source
// turns incoming JSON messages into a subject, and a Sink writes a
// stream's values out as JSON text messages.
//
// The package wraps the gorilla/websocket client with URL validation,
// handshake timeouts, and read limits, and follows the Start/Stop/Run
// lifecycle used across this module.
//
// # Configuration
//
// All configuration is handled through the Config struct with environment
// variable mapping:
//
//	type Config struct {
//		URL              string        `env:"WS_URL,required"`
//		HandshakeTimeout time.Duration `env:"WS_HANDSHAKE_TIMEOUT" envDefault:"10s"`
//		ReadLimit        int64         `env:"WS_READ_LIMIT" envDefault:"1048576"`
//	}
//
// # Receiving a Stream
//
//	conn, err := websocket.Dial(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	source, err := websocket.NewSource[Tick](conn)
//	if err != nil {
//		log.Fatal(err)
//	}
//	source.Subject().SubscribeFunc(func(t Tick) {
//		fmt.Println("tick:", t.Symbol, t.Price)
//	})
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(source.Run(ctx))
//
// Start returns nil when the peer performs a clean close, context.Err()
// on cancellation, and ErrFailedToReadMessage on transport failures.
// Messages that fail to decode into T are counted in Stats and dropped.
//
// # Sending a Stream
//
//	sink, err := websocket.NewSink[Tick](conn)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer sink.Close()
//
//	// Explicit sends, or attach a whole stream:
//	_ = sink.Send(ctx, Tick{Symbol: "ACME", Price: 42})
//	sub := sink.Attach(ctx, ticks)
//	defer sub.Unsubscribe()
//
// A Source and a Sink of the same T may share one connection: the source
// owns the read side, the sink serializes writes. This gives a full
// bidirectional bridge over a single WebSocket.
//
// # Error Handling
//
// The package defines domain-specific errors that can be checked using
// errors.Is():
//
//   - ErrEmptyURL, ErrInvalidURL: configuration problems caught before dialing
//   - ErrFailedToDial: the handshake failed
//   - ErrFailedToReadMessage, ErrFailedToWriteMessage: transport failures
//   - ErrSinkClosed: a send after Close
//   - ErrSourceAlreadyRunning, ErrSourceNotRunning: lifecycle misuse
package websocket

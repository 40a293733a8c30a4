package main

import (
	"net"

	"github.com/Eresh-tech/mllp"
)

var log = mllp.GetLogger()

func main() {
	ln, err := net.Listen("tcp", ":2575")
	if err != nil {
		log.Error("listener:", err)
		return
	}
	log.Info("listener:waiting on ", ln.Addr())

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Error("listener:", err)
			return
		}
		go handle(conn)
	}
}

func handle(conn net.Conn) {
	defer conn.Close()

	framed := mllp.NewFramed(conn,
		mllp.WithReadBufferLen(4096),
		mllp.WithMaxMessageLen(1<<20))

	log.Info("listener:connect:", conn.RemoteAddr())
	for {
		msg, err := framed.Next()
		if err != nil {
			log.Info("listener:close:", conn.RemoteAddr(), " ", err)
			return
		}
		log.Info("listener:read:", string(msg))

		if err := framed.Send([]byte("ACK")); err != nil {
			log.Error("listener:", err)
			return
		}
	}
}

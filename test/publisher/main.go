package main

import (
	"net"
	"strconv"

	"github.com/Eresh-tech/mllp"
)

var log = mllp.GetLogger()

func main() {
	conn, err := net.Dial("tcp", "127.0.0.1:2575")
	if err != nil {
		log.Error("publisher:error dialing ", err.Error())
		return
	}
	defer conn.Close()

	framed := mllp.NewFramed(conn)

	for i := 0; i < 10; i++ {
		err := framed.Send([]byte("hello, mllp " + strconv.Itoa(i)))
		if err != nil {
			log.Error("publisher:", err)
			return
		}

		//协议要求收到应答后才能发下一条
		ack, err := framed.Next()
		if err != nil {
			log.Error("publisher:", err)
			return
		}
		log.Info("publisher:ack:", string(ack))
	}
}

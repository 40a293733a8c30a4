// Package mllp 实现HL7 MLLP协议的帧编解码和简单的连接收发封装
package mllp

import (
	"errors"
	"io"

	"github.com/Eresh-tech/mllp/codec"
)

// 消息超过上限仍未读到帧尾
var ErrMessageTooLarge = errors.New("mllp: message too large")

const defaultReadBufferLen = 1024

// Framed 在可靠字节流上按MLLP协议收发消息，每个连接独占1个
// 缓冲区由Framed持有，Next和Send需由调用方串行化，不同连接互不影响
type Framed struct {
	rw     io.ReadWriter
	codec  codec.MllpCodec
	buf    *codec.Buffer
	maxLen int
}

type Option func(*Framed)

// 设置读缓冲区初始长度
func WithReadBufferLen(n int) Option {
	return func(f *Framed) {
		f.buf = codec.NewBuffer(make([]byte, n))
	}
}

// 设置单条消息的字节上限，超限后连接按出错处理
// 0表示不限制，此时恶意对端可把缓冲区撑到任意大
func WithMaxMessageLen(n int) Option {
	return func(f *Framed) {
		f.maxLen = n
	}
}

// 新建一个Framed，包装已建立的连接或其他ReadWriter
func NewFramed(rw io.ReadWriter, opts ...Option) *Framed {
	f := &Framed{
		rw:    rw,
		codec: codec.NewMllpCodec(),
		buf:   codec.NewBuffer(make([]byte, defaultReadBufferLen)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Send 编码消息并写入连接
func (f *Framed) Send(data []byte) error {
	return f.codec.EncodeToWriter(f.rw, data)
}

// Next 返回下一条完整消息
// 缓冲区里没有完整消息时阻塞读取更多字节，读出错时原样返回错误
// 对端正常关闭时返回io.EOF，关闭前已缓冲的完整消息会先被取完
func (f *Framed) Next() ([]byte, error) {
	for {
		if msg, ok := f.codec.DecodeFrame(f.buf); ok {
			log.Debug("mllp: received message, len=", len(msg))
			return msg, nil
		}

		if f.maxLen > 0 && f.buf.Len() > f.maxLen {
			return nil, ErrMessageTooLarge
		}

		//读到字节又同时报错（比如EOF前的最后一段数据）时，先把字节消费掉
		n, err := f.buf.ReadFromReader(f.rw)
		if err != nil && n == 0 {
			return nil, err
		}
	}
}

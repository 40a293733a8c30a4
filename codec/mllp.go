package codec

import (
	"bytes"
	"io"
)

const (
	blockHeader = 0x0B //帧头，垂直制表符
)

// 帧尾，文件分隔符+回车
var blockFooter = [2]byte{0x1C, 0x0D}

// MllpCodec HL7 MLLP协议编解码器
// 帧格式：0x0B | 消息体 | 0x1C 0x0D，消息体原样透传，不做转义
// 消息体里若出现0x1C 0x0D字节对，会被误认为帧尾（协议本身的限制）
// 无内部状态，可在多个连接间复用，同一缓冲区的调用需由调用方串行化
type MllpCodec struct{}

// 新建一个MLLP编解码器
func NewMllpCodec() MllpCodec {
	return MllpCodec{}
}

// Encode 用MLLP头尾包装消息体，返回待发送的字节
func (MllpCodec) Encode(data []byte) []byte {
	buf := make([]byte, 0, len(data)+3)
	buf = append(buf, blockHeader)
	buf = append(buf, data...)
	buf = append(buf, blockFooter[0], blockFooter[1])
	return buf
}

// EncodeToWriter 编码数据并写入Writer
func (c MllpCodec) EncodeToWriter(w io.Writer, data []byte) error {
	_, err := w.Write(c.Encode(data))
	return err
}

// DecodeFrame 从缓冲区取出最多1条完整消息
// 没有完整消息时返回false，缓冲区保持原样，等待追加更多字节后重试
// 成功时消耗帧尾（含）之前的全部字节，帧头之前的脏数据一并丢弃，
// 返回的消息体是独立副本，不受缓冲区后续变化影响
func (c MllpCodec) DecodeFrame(b *Buffer) ([]byte, bool) {
	data := b.GetBytes()

	//有没有帧头？
	start := bytes.IndexByte(data, blockHeader)
	if start < 0 {
		return nil, false
	}

	//有没有帧尾？
	//协议规定收到应答前不会发下一条消息，所以从头开始找帧尾是安全的
	end := footerPosition(data)
	if end < 0 {
		return nil, false
	}

	//消耗到帧尾为止的字节，帧尾之后的留给下一次调用
	frame, _ := b.Read(0, end+2)

	msg := make([]byte, end-start-1)
	copy(msg, frame[start+1:end])
	return msg, true
}

// Decode 循环取出缓冲区内的所有完整消息，逐条交给handler
func (c MllpCodec) Decode(b *Buffer, handler func([]byte)) error {
	for {
		msg, ok := c.DecodeFrame(b)
		if !ok {
			return nil
		}
		handler(msg)
	}
}

// footerPosition 从左往右找第一个帧尾字节对，返回其下标，找不到返回-1
func footerPosition(data []byte) int {
	for i := 0; i+1 < len(data); i++ {
		if data[i] == blockFooter[0] && data[i+1] == blockFooter[1] {
			return i
		}
	}
	return -1
}

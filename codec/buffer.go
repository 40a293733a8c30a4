package codec

import (
	"errors"
	"io"

	"golang.org/x/sys/unix"
)

var ErrorNotEnough = errors.New("Not enough")

// 读缓冲区，每个长连接独占1个
// MLLP帧没有长度字段，缓冲区按需扩容，不设上限
type Buffer struct {
	buf   []byte
	start int //起始位置
	end   int //最后一个字符的下一位，不包含该位置！！！
}

// 新建一个缓冲区
func NewBuffer(bytes []byte) *Buffer {
	return &Buffer{buf: bytes, start: 0, end: 0}
}

// 实际长度
func (b *Buffer) Len() int {
	return b.end - b.start
}

// 容量
func (b *Buffer) Cap() int {
	return len(b.buf)
}

// 取出未读数据，不拷贝
func (b *Buffer) GetBytes() []byte {
	return b.buf[b.start:b.end]
}

// 重新设置缓存区（将有用字节前移）
func (b *Buffer) reset() {
	if b.start == 0 {
		return
	}

	copy(b.buf, b.buf[b.start:b.end])
	b.end -= b.start
	b.start = 0
}

// 保证尾部至少有n个字节空闲，必要时前移或扩容
func (b *Buffer) grow(n int) {
	if len(b.buf)-b.end >= n {
		return
	}
	if b.Len()+n <= len(b.buf) {
		b.reset()
		return
	}

	buf := make([]byte, 2*len(b.buf)+n)
	copy(buf, b.buf[b.start:b.end])
	b.end -= b.start
	b.start = 0
	b.buf = buf
}

// 追加字节到缓冲区尾部，空间不足时扩容
func (b *Buffer) Write(p []byte) (int, error) {
	b.grow(len(p))
	n := copy(b.buf[b.end:], p)
	b.end += n
	return n, nil
}

// 从文件描述符里读取数据
func (b *Buffer) ReadFromFD(fd int) error {
	b.reset()
	b.grow(1)

	n, err := unix.Read(fd, b.buf[b.end:])
	if err != nil {
		return err
	}
	if n == 0 {
		return unix.EAGAIN
	}
	b.end += n
	return nil
}

// 从Reader读取数据
func (b *Buffer) ReadFromReader(reader io.Reader) (int, error) {
	b.reset()
	b.grow(1)

	n, err := reader.Read(b.buf[b.end:])
	b.end += n
	if err != nil {
		return n, err
	}
	return n, nil
}

// 从start+offset开始读取n个字节，字节数不足时，返回错误
func (b *Buffer) Read(offset, n int) ([]byte, error) {
	if b.Len() < offset+n {
		return nil, ErrorNotEnough
	}
	b.start += offset
	buf := b.buf[b.start : b.start+n]
	b.start += n
	return buf, nil
}

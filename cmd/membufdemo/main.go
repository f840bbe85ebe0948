// Command membufdemo demonstrates the membuf raw-memory structures.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/membuf/membuf"
)

// regionMagic marks a demo region header ("MMFX" in ASCII).
const regionMagic = 0x4D4D4658

func main() {
	var (
		width  = flag.Int("width", 320, "framebuffer width")
		height = flag.Int("height", 240, "framebuffer height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	demoCircularBuffer()
	demoBitArray()
	demoRegion()
	demoBatchTransformer()

	if err := demoFramebuffer(*width, *height, *output); err != nil {
		log.Fatalf("Failed to render framebuffer demo: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func demoCircularBuffer() {
	rb, err := membuf.NewCircularBuffer(5)
	if err != nil {
		log.Fatalf("Failed to create circular buffer: %v", err)
	}

	for _, v := range []int32{10, 20, 30, 40, 50} {
		_ = rb.Enqueue(v)
	}
	a, _ := rb.Dequeue()
	b, _ := rb.Dequeue()
	_ = rb.Enqueue(60)
	_ = rb.Enqueue(70)
	_ = rb.Enqueue(80)

	fmt.Printf("circular buffer: dequeued %d, %d; contents %v (%d/%d)\n",
		a, b, rb.ToSlice(), rb.Size(), rb.Capacity())
}

func demoBitArray() {
	bits, err := membuf.NewBitArray(32)
	if err != nil {
		log.Fatalf("Failed to create bit array: %v", err)
	}

	for _, i := range []int{0, 7, 15, 23, 31} {
		bits.SetBit(i)
	}
	fmt.Printf("bit array: %s (%d set)\n", bits, bits.CountSetBits())
}

func demoRegion() {
	region, err := membuf.NewMemoryMappedRegion(256)
	if err != nil {
		log.Fatalf("Failed to create region: %v", err)
	}

	region.WriteUint32(0, regionMagic)
	region.WriteInt32(4, 42)
	flushed := region.Flush()
	fmt.Printf("region: magic %#x, value %d, flushed %d bytes\n",
		region.ReadUint32(0), region.ReadInt32(4), flushed)
}

func demoBatchTransformer() {
	values := make([]int32, 16)
	for i := range values {
		values[i] = int32(i)
	}

	bt := membuf.NewBatchTransformer()
	seq := bt.ProcessSequential(values)
	batched := bt.ProcessBatched(values, 5)
	fmt.Printf("transformer: sequential %v\n             batched(5) %v\n", seq, batched)
}

func demoFramebuffer(width, height int, output string) error {
	fb, err := membuf.NewDoubleFramebuffer(width, height)
	if err != nil {
		return err
	}

	fb.Clear(membuf.Black)

	// Line fan from the top-left corner
	for x := 0; x < width; x += 16 {
		fb.DrawLine(0, 0, x, height-1, membuf.RGB(0, 200, 255))
	}
	for y := 0; y < height; y += 16 {
		fb.DrawLine(0, 0, width-1, y, membuf.RGB(255, 200, 0))
	}

	fb.DrawRect(8, 8, width-9, height-9, membuf.White)
	fb.DrawString(16, height-16, "membuf demo", membuf.White)

	fb.Swap()
	return fb.SavePNG(output)
}

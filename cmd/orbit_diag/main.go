// cmd/orbit_diag/main.go

package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strings"
	"time"
)

const (
	url    = "http://localhost:17000"
	delay  = 50 * time.Millisecond // Pause between scenes
	steps  = 120                   // Scenes per full orbit
	cx, cy = 400.0, 300.0          // Orbit centre
	radius = 200.0
)

func sendScene(serverURL string, payload string) {
	resp, err := http.Post(serverURL, "text/plain", strings.NewReader(payload))
	if err != nil {
		log.Fatalf("Error making POST request to %s: %v", serverURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			log.Printf("Error reading response body after non-OK status: %v", readErr)
		}
		log.Fatalf("Server returned non-OK status: %s\nResponse body: %s", resp.Status, string(bodyBytes))
	}
}

func scene(step int) string {
	a := 2 * math.Pi * float64(step) / steps
	x := cx + radius*math.Cos(a)
	y := cy + radius*math.Sin(a)

	var b strings.Builder
	fmt.Fprintln(&b, "background 255")
	fmt.Fprintln(&b, "nofill")
	fmt.Fprintln(&b, "stroke 200")
	fmt.Fprintf(&b, "circle %.1f %.1f %.1f\n", cx, cy, 2*radius)
	fmt.Fprintln(&b, "stroke 0")
	fmt.Fprintf(&b, "line %.1f %.1f %.1f %.1f\n", cx, cy, x, y)
	fmt.Fprintln(&b, "fill 220 40 40")
	fmt.Fprintf(&b, "circle %.1f %.1f 30\n", x, y)
	fmt.Fprintf(&b, "text 10 20 step %d\n", step)
	return b.String()
}

func main() {
	fmt.Println("Starting orbit...")
	for i := 0; i < steps; i++ {
		sendScene(url, scene(i))
		time.Sleep(delay)
	}
	fmt.Println("Orbit finished.")
}

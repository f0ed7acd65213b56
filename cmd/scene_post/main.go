// cmd/scene_post/main.go

package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

const url = "http://localhost:17000"

func main() {
	payload := `background 30 30 40
nostroke
fill 240 200 60
circle 400 300 180
fill 60 120 220 180
rect 80 380 640 140
stroke 255
weight 3
line 80 380 720 380
fill 255
text 90 540 hello from scene_post`

	fmt.Println("Sending scene commands...")

	resp, err := http.Post(url, "text/plain", strings.NewReader(payload))
	if err != nil {
		log.Fatalf("Error making POST request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			log.Printf("Error reading response body after non-OK status: %v", readErr)
		}
		log.Fatalf("Server returned non-OK status: %s\nResponse body: %s", resp.Status, string(bodyBytes))
	}

	fmt.Println("Done.")
}

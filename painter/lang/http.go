package lang

import (
	"bufio"
	"log"
	"net/http"
	"strings"

	"github.com/roman-mazur/p5/painter"
)

// HttpHandler creates an HTTP handler that parses a posted script and
// replaces the scene with it.
func HttpHandler(scene *Scene) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			log.Printf("HTTP Handler: Method not allowed %s", r.Method)
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		scanner := bufio.NewScanner(r.Body)
		defer r.Body.Close()

		var shapes []painter.Shape
		for scanner.Scan() {
			commandLine := strings.TrimSpace(scanner.Text())
			if commandLine == "" || strings.HasPrefix(commandLine, "#") {
				continue
			}

			s, err := Parse(commandLine)
			if err != nil {
				log.Printf("HTTP Handler: Error parsing command '%s': %v", commandLine, err)
				continue
			}
			shapes = append(shapes, s)
		}

		if err := scanner.Err(); err != nil {
			log.Printf("HTTP Handler: Error reading request body: %v", err)
			http.Error(w, "Error reading request body", http.StatusInternalServerError)
			return
		}

		scene.Replace(shapes)

		log.Printf("HTTP Handler: Scene replaced with %d shapes", len(shapes))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Scene updated\n"))
	}
}

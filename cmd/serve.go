package cmd

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/realscript/realscript/constants"
	"github.com/realscript/realscript/model"
	"github.com/realscript/realscript/pitchset"
	"github.com/realscript/realscript/tonality"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves scales and chords over http",
	Long:  `Serves scales and chords over http`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func toResult(set pitchset.PitchSet) model.PitchSetResult {
	return model.PitchSetResult{
		Name:   set.Name,
		Tonic:  set.Tonic,
		Notes:  set.Notes,
		Values: set.Values,
		Third:  set.Third,
	}
}

func writeError(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	var input model.ScaleRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, err)
		return
	}

	t, err := tonality.New(input.Tonic, input.ScaleType, input.Mode)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(toResult(t.Scale))
}

func HandleChords(w http.ResponseWriter, r *http.Request) {
	var input model.ChordsRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, err)
		return
	}

	t, err := tonality.New(input.Tonic, input.ScaleType, input.Mode)
	if err != nil {
		writeError(w, err)
		return
	}
	chords, err := t.Chords(input.Degrees, input.Size)
	if err != nil {
		writeError(w, err)
		return
	}

	res := make([]model.PitchSetResult, 0, len(chords))
	for _, c := range chords {
		res = append(res, toResult(c))
	}
	json.NewEncoder(w).Encode(model.ChordsResponse{Chords: res})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/scale", HandleScale).Methods("POST")
	router.HandleFunc("/chords", HandleChords).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(constants.GetServeAddr(), handler))
}

package application

import "nhrsa/helpers"

func getURLFileName(url string) string {
	return "url=" + helpers.Base64Encode(url)
}

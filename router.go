package main

import (
	"homework-show/biz/adaptor/controller"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", controller.Ping)

	hw := r.Group("/homework")
	{
		hw.POST("/", controller.CreateHomework)
		hw.POST("/draft", controller.CreateHomeworkDraft)
		hw.GET("/", controller.ListHomeworks)
		// 过滤列表
		hw.GET("/person/:key", controller.ListByPerson)
		hw.GET("/group/:key", controller.ListByGroup)
		hw.GET("/school/:key", controller.ListBySchool)
		hw.GET("/has/images", controller.ListWithImages)
		hw.GET("/has/videos", controller.ListWithVideos)
		hw.GET("/has/urls", controller.ListWithUrls)
		hw.GET("/:id", controller.GetHomework)
		hw.PUT("/:id", controller.UpdateHomework)
		hw.DELETE("/:id", controller.DeleteHomework)
	}

	up := r.Group("/upload")
	{
		up.POST("/presign", controller.Presign)
		up.POST("/create-and-presign", controller.CreateDraftAndPresign)
		up.POST("/upload", controller.Upload)
		up.POST("/upload-multi", controller.UploadMulti)
		up.DELETE("/files", controller.DeleteFiles)
	}

	u := r.Group("/user")
	{
		u.POST("/sign-up", controller.SignUp)
		u.POST("/sign-in", controller.SignIn)
	}

	v := r.Group("/verification")
	{
		v.POST("/send", controller.SendVerifyCode)
		v.POST("/verify", controller.VerifyCode)
	}
}
